package xmac

import (
	"fmt"
	"strings"
)

// Format 定义 MAC 地址的输出格式。
//
// 零值 [Format802Canon] 是默认格式；未知的 Format 值同样按 [Format802Canon] 输出。
type Format uint8

const (
	// Format802Canon IEEE 802 规范格式，短线分隔，大写：AA-BB-CC-DD-EE-FF
	Format802Canon Format = iota
	// FormatUnix 冒号分隔，小写，补零：aa:bb:cc:dd:ee:ff
	FormatUnix
	// FormatSunUnix 冒号分隔，小写，不补零：0:11:2:33:4:55
	FormatSunUnix
	// FormatCisco 点分隔的四位组（Cisco 风格），小写：aabb.ccdd.eeff
	FormatCisco
	// Format802CanonLower 短线分隔，小写：aa-bb-cc-dd-ee-ff
	Format802CanonLower
	// FormatPacked 无分隔符，大写：AABBCCDDEEFF
	FormatPacked
	// FormatPackedLower 无分隔符，小写：aabbccddeeff
	FormatPackedLower

	numFormats
)

// formatInfo 描述一种格式的名称与缓冲区下限。
// minBuf 为调用方缓冲区的最小长度，分隔格式含一个结尾 NUL 的位置。
type formatInfo struct {
	name   string
	minBuf int
}

var formats = [numFormats]formatInfo{
	Format802Canon:      {name: "802canon", minBuf: 18},
	FormatUnix:          {name: "unix", minBuf: 18},
	FormatSunUnix:       {name: "sununix", minBuf: 18},
	FormatCisco:         {name: "cisco", minBuf: 15},
	Format802CanonLower: {name: "802canonlc", minBuf: 18},
	FormatPacked:        {name: "packed", minBuf: 12},
	FormatPackedLower:   {name: "packedlc", minBuf: 12},
}

// Formats 返回全部格式，按声明顺序排列。
func Formats() []Format {
	out := make([]Format, 0, numFormats)
	for f := range numFormats {
		out = append(out, f)
	}
	return out
}

// ParseFormat 按名称查找格式，大小写不敏感，忽略首尾空白。
// 名称与 [Format.String] 的返回值一致。
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, info := range formats {
		if info.name == n {
			return Format(f), nil
		}
	}
	return Format802Canon, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// known 报告 f 是否为已定义的格式。
func (f Format) known() bool {
	return f < numFormats
}

// resolve 将未知格式映射为默认格式。
func (f Format) resolve() Format {
	if !f.known() {
		return Format802Canon
	}
	return f
}

// String 返回格式名称；未知值返回 "Format(N)"。
func (f Format) String() string {
	if !f.known() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formats[f].name
}

// MinBufferLen 返回 [FormatTo] 要求的最小缓冲区长度。
// 未知格式返回 [Format802Canon] 的要求。
func (f Format) MinBufferLen() int {
	return formats[f.resolve()].minBuf
}

// MarshalText 实现 [encoding.TextMarshaler]，输出格式名称。
func (f Format) MarshalText() ([]byte, error) {
	if !f.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
	return []byte(formats[f].name), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，用于从配置文件读取格式名称。
func (f *Format) UnmarshalText(text []byte) error {
	if f == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// FormatTo 将 a 按格式 f 写入 buf，返回写入的字节数。
//
// len(buf) 即调用方声明的容量。容量低于 f.MinBufferLen() 时返回 [ErrBufferTooSmall]，
// 且不写入任何字节。写入永远不会越过 len(buf)，也不会追加结尾 NUL。
func FormatTo(a Addr, f Format, buf []byte) (int, error) {
	f = f.resolve()
	if need := formats[f].minBuf; len(buf) < need {
		return 0, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrBufferTooSmall, f, need, len(buf))
	}
	// 限定 cap，保证 append 不会写出 buf 的声明范围
	out := a.AppendFormat(buf[:0:len(buf)], f)
	return len(out), nil
}

// AppendFormat 将 a 按格式 f 追加到 dst 并返回扩展后的切片。
func (a Addr) AppendFormat(dst []byte, f Format) []byte {
	switch f {
	case FormatUnix:
		return appendSep(dst, a.bytes, ':', hexLower)
	case FormatSunUnix:
		return appendSun(dst, a.bytes)
	case FormatCisco:
		return appendCisco(dst, a.bytes)
	case Format802CanonLower:
		return appendSep(dst, a.bytes, '-', hexLower)
	case FormatPacked:
		return appendPacked(dst, a.bytes, hexUpper)
	case FormatPackedLower:
		return appendPacked(dst, a.bytes, hexLower)
	case Format802Canon:
		return appendSep(dst, a.bytes, '-', hexUpper)
	default:
		return appendSep(dst, a.bytes, '-', hexUpper)
	}
}

// FormatString 按格式 f 返回字符串。
func (a Addr) FormatString(f Format) string {
	var buf [textLen]byte
	return string(a.AppendFormat(buf[:0], f))
}

// String 返回小写冒号格式（[FormatUnix]），与 [net.HardwareAddr.String] 一致。
func (a Addr) String() string {
	return a.FormatString(FormatUnix)
}

// appendSep 输出 xx?xx?xx?xx?xx?xx，? 为 sep。
func appendSep(dst []byte, b [6]byte, sep byte, hex string) []byte {
	for i, o := range b {
		if i > 0 {
			dst = append(dst, sep)
		}
		dst = append(dst, hex[o>>4], hex[o&0x0f])
	}
	return dst
}

// appendSun 输出 x:x:x:x:x:x，每个八位组省略前导零。
func appendSun(dst []byte, b [6]byte) []byte {
	for i, o := range b {
		if i > 0 {
			dst = append(dst, ':')
		}
		if o>>4 != 0 {
			dst = append(dst, hexLower[o>>4])
		}
		dst = append(dst, hexLower[o&0x0f])
	}
	return dst
}

// appendCisco 输出 xxxx.xxxx.xxxx。
func appendCisco(dst []byte, b [6]byte) []byte {
	for i, o := range b {
		if i > 0 && i%2 == 0 {
			dst = append(dst, '.')
		}
		dst = append(dst, hexLower[o>>4], hexLower[o&0x0f])
	}
	return dst
}

// appendPacked 输出 12 个连续十六进制字符。
func appendPacked(dst []byte, b [6]byte, hex string) []byte {
	for _, o := range b {
		dst = append(dst, hex[o>>4], hex[o&0x0f])
	}
	return dst
}
