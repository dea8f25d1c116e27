package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xenet/pkg/observability/xlog"
	"github.com/omeyang/xenet/pkg/util/xmac"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createFormatCommand(),
		createConvertCommand(),
		createFormatsCommand(),
	}
}

func notationFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "notation",
		Aliases: []string{"n"},
		Usage:   "输出格式，见 formats 命令（默认: 802canon）",
	}
}

// createParseCommand 创建 parse 子命令。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:         "parse",
		Aliases:      []string{"p"},
		Usage:        "解析地址，输出八位组与全部格式",
		ArgsUsage:    "<addr>...",
		OnUsageError: wrapUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "parse 需要至少一个地址"}
			}
			_, logger, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()
			return cmdParse(ctx, logger, cmd.Root().Writer, args)
		},
	}
}

// createFormatCommand 创建 format 子命令。
func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:         "format",
		Aliases:      []string{"f"},
		Usage:        "按指定格式输出地址",
		ArgsUsage:    "<addr>...",
		Flags:        []cli.Flag{notationFlag()},
		OnUsageError: wrapUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "format 需要至少一个地址"}
			}
			s, logger, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()
			return cmdFormat(ctx, logger, cmd.Root().Writer, s.Format, args)
		},
	}
}

// createConvertCommand 创建 convert 子命令。
func createConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Aliases:   []string{"c"},
		Usage:     "批量转换，无参数时从标准输入逐行读取",
		ArgsUsage: "[addr...]",
		Flags: []cli.Flag{
			notationFlag(),
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "并发转换数（默认: GOMAXPROCS）",
			},
		},
		OnUsageError: wrapUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, logger, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			var src lineSource
			if cmd.Args().Present() {
				src = argsSource(cmd.Args().Slice())
			} else {
				src = readerSource(cmd.Root().Reader)
			}
			return cmdConvert(ctx, logger, cmd.Root().Writer, s, src)
		},
	}
}

// createFormatsCommand 创建 formats 子命令。
func createFormatsCommand() *cli.Command {
	return &cli.Command{
		Name:         "formats",
		Usage:        "列出支持的格式",
		OnUsageError: wrapUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdFormats(cmd.Root().Writer)
		},
	}
}

// cmdParse 逐个解析地址并输出全部格式。任一地址失败时退出码为 1。
func cmdParse(ctx context.Context, logger xlog.Logger, w io.Writer, args []string) error {
	failed := 0
	for i, arg := range args {
		if i > 0 {
			fmt.Fprintln(w)
		}
		addr, err := xmac.Parse(arg)
		if err != nil {
			failed++
			logger.Warn(ctx, "parse failed", xlog.Input(arg), xlog.Err(err))
			fmt.Fprintf(w, "%s\n  error: %v\n", arg, err)
			continue
		}
		fmt.Fprintln(w, arg)
		fmt.Fprintf(w, "  %-11s%s\n", "octets", octets(addr))
		for _, f := range xmac.Formats() {
			fmt.Fprintf(w, "  %-11s%s\n", f, addr.FormatString(f))
		}
	}
	logger.Debug(ctx, "parse done", xlog.Count(len(args)))
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// cmdFormat 按格式 f 输出每个地址，每行一个。
func cmdFormat(ctx context.Context, logger xlog.Logger, w io.Writer, f xmac.Format, args []string) error {
	failed := 0
	var buf [18]byte
	for _, arg := range args {
		text, err := convertOne(arg, f, buf[:])
		if err != nil {
			failed++
			logger.Warn(ctx, "format failed", xlog.Input(arg), xlog.Format(f.String()), xlog.Err(err))
			fmt.Fprintf(w, "error: %s: %v\n", arg, err)
			continue
		}
		fmt.Fprintln(w, text)
	}
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// cmdFormats 列出所有格式名称、示例与最小缓冲区。
func cmdFormats(w io.Writer) error {
	example := xmac.MustParse("00:11:22:33:44:55")
	fmt.Fprintf(w, "%-11s%-19s%s\n", "NAME", "EXAMPLE", "MIN-BUFFER")
	for _, f := range xmac.Formats() {
		fmt.Fprintf(w, "%-11s%-19s%d\n", f, example.FormatString(f), f.MinBufferLen())
	}
	return nil
}

// convertOne 解析 s 并通过 buf 按格式 f 输出。buf 须满足 f.MinBufferLen()。
func convertOne(s string, f xmac.Format, buf []byte) (string, error) {
	addr, err := xmac.Parse(s)
	if err != nil {
		return "", err
	}
	n, err := xmac.FormatTo(addr, f, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// octets 以 0x 前缀逐字节输出。
func octets(a xmac.Addr) string {
	var sb strings.Builder
	for i, o := range a.Bytes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02x", o)
	}
	return sb.String()
}
