// xmacctl 在 MAC 地址的文本表示与各种输出格式之间转换。
//
// 用法:
//
//	xmacctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件（.yaml/.yml/.json）
//	    --log-level   日志级别 (debug/info/warn/error，默认: info)
//	    --log-format  日志格式 (text/json，默认: text)
//	    --log-file    日志文件路径，设置后按大小轮转
//
// 命令:
//
//	parse <addr>...     解析地址，输出八位组与全部格式
//	format <addr>...    按 --notation 指定的格式输出
//	convert             批量转换（参数或标准输入，每行一个地址）
//	formats             列出支持的格式及最小缓冲区
//
// 退出码:
//
//	0: 成功
//	1: 存在无法解析的地址
//	2: 参数错误（缺少参数、未知格式、未知 flag 等）
//
// 示例:
//
//	xmacctl parse 00:11:22:33:44:55
//	xmacctl format -n cisco 00:11:22:33:44:55      # 0011.2233.4455
//	cat macs.txt | xmacctl convert -n packed -j 8
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xmacctl",
		Usage:   "MAC 地址解析与格式转换",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径，设置后按大小轮转",
			},
		},
		Commands:     createCommands(),
		OnUsageError: wrapUsageError,
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := createApp()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
