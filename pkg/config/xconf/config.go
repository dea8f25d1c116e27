package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Option 定义配置选项函数类型。
type Option func(*options)

type options struct {
	delim string
	tag   string
}

// WithDelim 设置配置键分隔符，默认为 "."。
func WithDelim(delim string) Option {
	return func(o *options) { o.delim = delim }
}

// WithTag 设置 Unmarshal 使用的结构体标签，默认为 "koanf"。
func WithTag(tag string) Option {
	return func(o *options) { o.tag = tag }
}

// Config 是加载完成的只读配置。
type Config struct {
	k      *koanf.Koanf
	path   string
	format Format
	tag    string
}

// Load 从文件加载配置，按扩展名（.yaml/.yml/.json）识别格式。
func Load(path string, opts ...Option) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	cfg, err := LoadBytes(data, format, opts...)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// LoadBytes 从字节数据加载配置，格式须显式指定。
// 空数据得到空配置，Unmarshal 时目标结构体保持零值。
func LoadBytes(data []byte, format Format, opts ...Option) (*Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	o := options{delim: ".", tag: "koanf"}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(o.delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	return &Config{k: k, format: format, tag: o.tag}, nil
}

// FormatFromPath 根据文件扩展名返回配置格式。
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Unmarshal 将 path 下的配置反序列化到 target，path 为空时反序列化全部配置。
func (c *Config) Unmarshal(path string, target any) error {
	if err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: c.tag}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Exists 报告配置中是否存在 key。
func (c *Config) Exists(key string) bool {
	return c.k.Exists(key)
}

// Client 返回底层 koanf 实例，用于 koanf 支持的其他操作。
func (c *Config) Client() *koanf.Koanf {
	return c.k
}

// Path 返回配置文件路径，从字节数据加载时为空。
func (c *Config) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *Config) Format() Format {
	return c.format
}
