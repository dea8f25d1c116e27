package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

var _ LoggerWithLevel = (*xlogger)(nil)

// xlogger Logger 接口的实现
type xlogger struct {
	handler   slog.Handler
	levelVar  *slog.LevelVar
	addSource bool
}

// log 通用日志方法
//
//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if !l.handler.Enabled(ctx, level) {
		return
	}
	// 仅在启用 AddSource 时捕获调用者位置
	var pc uintptr
	if l.addSource {
		// skip=3: Callers → log → Debug/Info/... → 业务代码
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	// 日志写入失败不向业务扩散
	_ = l.handler.Handle(ctx, r)
}

// Debug 记录 Debug 级别日志
func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

// Info 记录 Info 级别日志
func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

// Warn 记录 Warn 级别日志
func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

// Error 记录 Error 级别日志
func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

// With 返回带额外属性的派生 Logger
func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{
		handler:   l.handler.WithAttrs(attrs),
		levelVar:  l.levelVar,
		addSource: l.addSource,
	}
}

// SetLevel 动态设置日志级别
func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

// GetLevel 获取当前日志级别
func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

// Enabled 检查指定级别是否启用
func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(ctx, slog.Level(level))
}

// Discard 返回丢弃所有输出的 Logger，用于测试与未配置日志的场景
func Discard() LoggerWithLevel {
	levelVar := new(slog.LevelVar)
	return &xlogger{
		handler:  slog.DiscardHandler,
		levelVar: levelVar,
	}
}
