package xmac

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// isHex 报告 c 是否为十六进制字符（0-9a-fA-F）。
func isHex(c byte) bool {
	_, ok := hexValue(c)
	return ok
}

// isSeparator 报告 c 是否为 MAC 地址分隔符（':' 或 '-'）。
func isSeparator(c byte) bool {
	return c == ':' || c == '-'
}

// hexValue 返回十六进制字符的半字节数值，大小写不敏感。
func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
