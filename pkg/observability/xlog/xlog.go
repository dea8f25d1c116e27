package xlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Logger 日志接口
//
// 所有方法都需要 context.Context 参数；属性只接受 slog.Attr，
// 避免隐式 key-value 转换。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger，派生 logger 共享父级的级别
	With(attrs ...slog.Attr) Logger
}

// Leveler 级别控制接口
type Leveler interface {
	SetLevel(level Level)
	GetLevel() Level
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口：Logger + Leveler，由 Build 返回。
type LoggerWithLevel interface {
	Logger
	Leveler
}

// Level 日志级别，与 slog.Level 兼容
type Level slog.Level

// 日志级别常量
const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// String 返回级别名称，委托给 slog.Level
func (l Level) String() string {
	return slog.Level(l).String()
}

// UnmarshalText 实现 encoding.TextUnmarshaler，支持从配置文件读取级别
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析 debug/info/warn/warning/error（大小写不敏感）
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
	}
}
