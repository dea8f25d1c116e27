package main

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xenet/pkg/config/xconf"
	"github.com/omeyang/xenet/pkg/observability/xlog"
	"github.com/omeyang/xenet/pkg/util/xmac"
)

// settings 是配置文件与命令行合并后的运行参数。命令行优先。
type settings struct {
	Format xmac.Format `koanf:"format"`
	Jobs   int         `koanf:"jobs"`
	Log    logSettings `koanf:"log"`
}

type logSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

func defaultSettings() settings {
	return settings{
		Format: xmac.Format802Canon,
		Jobs:   runtime.GOMAXPROCS(0),
		Log:    logSettings{Level: "info", Format: "text"},
	}
}

// loadSettings 读取 --config 指定的配置文件，再用显式设置的 flag 覆盖。
func loadSettings(cmd *cli.Command) (settings, error) {
	s := defaultSettings()

	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.Load(path)
		if err != nil {
			return s, err
		}
		// 格式名写错属于参数错误，先于整体反序列化单独校验。
		if cfg.Exists("format") {
			if _, err := xmac.ParseFormat(cfg.Client().String("format")); err != nil {
				return s, &usageError{msg: fmt.Sprintf("config %s: %v", path, err)}
			}
		}
		if err := cfg.Unmarshal("", &s); err != nil {
			return s, err
		}
	}

	if cmd.IsSet("log-level") {
		s.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		s.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		s.Log.File = cmd.String("log-file")
	}
	if cmd.IsSet("notation") {
		f, err := xmac.ParseFormat(cmd.String("notation"))
		if err != nil {
			return s, &usageError{msg: err.Error()}
		}
		s.Format = f
	}
	if cmd.IsSet("jobs") {
		s.Jobs = cmd.Int("jobs")
	}
	if s.Jobs < 1 {
		return s, &usageError{msg: fmt.Sprintf("jobs must be positive, got %d", s.Jobs)}
	}
	return s, nil
}

// newLogger 按 settings 构建日志，未指定文件时输出到 ErrWriter。
func newLogger(cmd *cli.Command, s settings) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(cmd.Root().ErrWriter).
		SetLevelString(s.Log.Level).
		SetFormat(s.Log.Format)
	if s.Log.File != "" {
		b = b.SetRotation(s.Log.File)
	}
	return b.Build()
}

// setup 加载配置并构建日志。
func setup(cmd *cli.Command) (settings, xlog.LoggerWithLevel, func() error, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return s, nil, nil, err
	}
	logger, cleanup, err := newLogger(cmd, s)
	if err != nil {
		return s, nil, nil, &usageError{msg: err.Error()}
	}
	return s, logger, cleanup, nil
}
