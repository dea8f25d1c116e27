package xlog

import "log/slog"

// 常用属性 Key
const (
	KeyError  = "error"
	KeyInput  = "input"
	KeyFormat = "format"
	KeyLine   = "line"
	KeyCount  = "count"
)

// Err 创建错误属性；err 为 nil 时返回空属性（会被 slog 忽略）
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Input 记录原始输入文本
func Input(s string) slog.Attr {
	return slog.String(KeyInput, s)
}

// Format 记录输出格式名称
func Format(name string) slog.Attr {
	return slog.String(KeyFormat, name)
}

// Line 记录输入行号（从 1 开始）
func Line(n int) slog.Attr {
	return slog.Int(KeyLine, n)
}

// Count 记录计数
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}
