package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
//
// 解析只会返回 ErrBadLength、ErrBadHex、ErrBadSeparator 之一；
// 格式化只会返回 ErrBufferTooSmall。
var (
	// ErrBadLength 表示输入的有效字符数不是 17。
	ErrBadLength = errors.New("xmac: bad length")

	// ErrBadHex 表示数字位置上出现了非十六进制字符。
	ErrBadHex = errors.New("xmac: bad hex digit")

	// ErrBadSeparator 表示分隔符位置上出现了 ':' 和 '-' 以外的字符。
	ErrBadSeparator = errors.New("xmac: bad separator")

	// ErrBufferTooSmall 表示输出缓冲区容量低于该格式的最小要求。
	ErrBufferTooSmall = errors.New("xmac: buffer too small")

	// ErrUnknownFormat 表示无法识别的格式名称。
	ErrUnknownFormat = errors.New("xmac: unknown format")

	// ErrNilReceiver 表示在 nil 指针上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
