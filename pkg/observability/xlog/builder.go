package xlog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30
)

// ErrEmptyFilename 表示轮转文件名为空
var ErrEmptyFilename = errors.New("xlog: empty rotation filename")

// RotationOption 轮转配置选项
type RotationOption func(*lumberjack.Logger)

// WithMaxSize 设置单个日志文件最大大小（MB）
func WithMaxSize(mb int) RotationOption {
	return func(l *lumberjack.Logger) { l.MaxSize = mb }
}

// WithMaxBackups 设置保留的备份文件数量
func WithMaxBackups(n int) RotationOption {
	return func(l *lumberjack.Logger) { l.MaxBackups = n }
}

// WithMaxAge 设置备份保留天数
func WithMaxAge(days int) RotationOption {
	return func(l *lumberjack.Logger) { l.MaxAge = days }
}

// WithCompress 设置是否 gzip 压缩备份
func WithCompress(compress bool) RotationOption {
	return func(l *lumberjack.Logger) { l.Compress = compress }
}

// Builder 日志配置构建器
//
// 配置错误会被记录下来，在 Build 时统一返回。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	rotator   *lumberjack.Logger
	err       error
}

// New 创建配置构建器，默认输出到 stderr，级别 info，text 格式
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   "text",
	}
}

// SetOutput 设置日志输出目标
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	b.rotator = nil
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空值视为 text
func (b *Builder) SetFormat(format string) *Builder {
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "":
		b.format = "text"
	case "text", "json":
		b.format = normalized
	default:
		b.err = fmt.Errorf("xlog: unknown format %q", format)
	}
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetRotation 将日志写入 filename 并按大小轮转
//
// 父目录不存在时自动创建（0750）。Build 返回的 cleanup 负责关闭文件。
func (b *Builder) SetRotation(filename string, opts ...RotationOption) *Builder {
	if filename == "" {
		b.err = ErrEmptyFilename
		return b
	}
	clean := filepath.Clean(filename)
	if err := os.MkdirAll(filepath.Dir(clean), 0o750); err != nil {
		b.err = fmt.Errorf("xlog: create log dir: %w", err)
		return b
	}
	r := &lumberjack.Logger{
		Filename:   clean,
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAgeDays,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.MaxSize <= 0 {
		b.err = fmt.Errorf("xlog: invalid max size %d", r.MaxSize)
		return b
	}
	b.rotator = r
	b.output = r
	return b
}

// Build 构建 Logger 实例
//
// 返回值：
//   - LoggerWithLevel: 日志实例
//   - func() error: 清理函数，可重复调用
//   - error: 配置错误
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}

	var handler slog.Handler
	switch b.format {
	case "json":
		handler = slog.NewJSONHandler(b.output, opts)
	default:
		handler = slog.NewTextHandler(b.output, opts)
	}

	logger := &xlogger{
		handler:   handler,
		levelVar:  b.levelVar,
		addSource: b.addSource,
	}

	var once sync.Once
	rotator := b.rotator
	cleanup := func() error {
		var err error
		once.Do(func() {
			if rotator != nil {
				err = rotator.Close()
			}
		})
		return err
	}

	return logger, cleanup, nil
}
