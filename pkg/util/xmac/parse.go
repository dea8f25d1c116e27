package xmac

import "fmt"

// textLen 是唯一可解析的文本长度：6 组 2 位十六进制 + 5 个分隔符。
const textLen = 17

// Parse 解析 "HH:HH:HH:HH:HH:HH" 或 "HH-HH-HH-HH-HH-HH" 形式的 MAC 地址。
//
// 规则：
//   - 有效长度必须恰好为 17：遇到 NUL 字节即视为结束，之后的内容不计入
//   - 索引 i%3 != 2 的位置必须是十六进制字符（大小写不敏感）
//   - 索引 i%3 == 2 的位置必须是 ':' 或 '-'，各位置独立判断，允许混用
//   - 不去除首尾空白
//
// 失败时返回包装了 [ErrBadLength]、[ErrBadHex] 或 [ErrBadSeparator] 的错误，
// 地址为零值。先完整校验再解码，非法输入不会产生部分结果。
func Parse(s string) (Addr, error) {
	return parse(s)
}

// ParseBytes 与 [Parse] 相同，直接解析字节切片，不做 string 转换。
func ParseBytes(b []byte) (Addr, error) {
	return parse(b)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

func parse[T string | []byte](s T) (Addr, error) {
	if n := significantLen(s); n != textLen {
		return Addr{}, fmt.Errorf("%w: expected %d characters, got %d", ErrBadLength, textLen, n)
	}

	// 第一遍：只校验结构
	for i := range textLen {
		c := s[i]
		if i%3 != 2 {
			if !isHex(c) {
				return Addr{}, fmt.Errorf("%w: %q at position %d", ErrBadHex, c, i)
			}
		} else if !isSeparator(c) {
			return Addr{}, fmt.Errorf("%w: %q at position %d", ErrBadSeparator, c, i)
		}
	}

	// 第二遍：j 为已消费的十六进制字符数，偶数为高半字节，奇数为低半字节
	var a Addr
	j := 0
	for i := range textLen {
		if i%3 == 2 {
			continue
		}
		v, _ := hexValue(s[i])
		if j&1 == 0 {
			a.bytes[j/2] = v << 4
		} else {
			a.bytes[j/2] |= v
		}
		j++
	}
	return a, nil
}

// significantLen 返回第一个 NUL 字节之前的长度，没有 NUL 时为 len(s)。
func significantLen[T string | []byte](s T) int {
	for i := range len(s) {
		if s[i] == 0 {
			return i
		}
	}
	return len(s)
}
