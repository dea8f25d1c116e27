package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xenet/pkg/observability/xlog"
	"github.com/omeyang/xenet/pkg/util/xmac"
)

// maxLineLen 是单行输入的最大字节数，超出的行记为该行的转换失败。
const maxLineLen = 256

var errLineTooLong = fmt.Errorf("line exceeds %d bytes", maxLineLen)

// inputLine 是一行输入及其行号（从 1 开始）。err 非空时该行不参与解析。
type inputLine struct {
	no   int
	text string
	err  error
}

// lineSource 提供待转换的输入行。
type lineSource func() ([]inputLine, error)

// argsSource 将命令行参数作为输入，第 i 个参数的行号为 i+1。
func argsSource(args []string) lineSource {
	return func() ([]inputLine, error) {
		lines := make([]inputLine, len(args))
		for i, a := range args {
			lines[i] = inputLine{no: i + 1, text: a}
		}
		return lines, nil
	}
}

// readerSource 逐行读取 r，去除行尾 "\r" 并跳过空行，行号保持原始位置。
// 超过 maxLineLen 的行被整行丢弃并以 errLineTooLong 标记。
func readerSource(r io.Reader) lineSource {
	return func() ([]inputLine, error) {
		var lines []inputLine
		br := bufio.NewReaderSize(r, maxLineLen+2)
		for no := 1; ; no++ {
			raw, isPrefix, err := br.ReadLine()
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			if err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			if isPrefix || len(raw) > maxLineLen {
				for isPrefix && err == nil {
					_, isPrefix, err = br.ReadLine()
				}
				if err != nil && !errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("read input: %w", err)
				}
				lines = append(lines, inputLine{no: no, err: errLineTooLong})
				continue
			}
			text := strings.TrimRight(string(raw), "\r")
			if text == "" {
				continue
			}
			lines = append(lines, inputLine{no: no, text: text})
		}
	}
}

// result 是单行的转换结果。
type result struct {
	text string
	err  error
}

// cmdConvert 以 s.Jobs 为并发上限转换所有输入，按输入顺序输出。
// 失败行输出为 "error: line N: ..."，任一行失败时退出码为 1。
func cmdConvert(ctx context.Context, logger xlog.Logger, w io.Writer, s settings, src lineSource) error {
	lines, err := src()
	if err != nil {
		return err
	}

	results, err := convertAll(ctx, lines, s.Format, s.Jobs)
	if err != nil {
		return err
	}

	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			logger.Warn(ctx, "convert failed", xlog.Line(lines[i].no), xlog.Input(lines[i].text), xlog.Err(r.err))
			fmt.Fprintf(w, "error: line %d: %v\n", lines[i].no, r.err)
			continue
		}
		fmt.Fprintln(w, r.text)
	}
	logger.Info(ctx, "convert done",
		xlog.Format(s.Format.String()), xlog.Count(len(lines)), slog.Int("failed", failed))
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// convertAll 并发转换 lines，结果与输入一一对应。
// 单行的解析错误记录在 result 中，只有 ctx 取消会中止整批转换。
func convertAll(ctx context.Context, lines []inputLine, f xmac.Format, jobs int) ([]result, error) {
	results := make([]result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if line.err != nil {
				results[i] = result{err: line.err}
				return nil
			}
			buf := make([]byte, f.MinBufferLen())
			text, err := convertOne(line.text, f, buf)
			results[i] = result{text: text, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// 循环因取消提前退出时 g.Wait 可能返回 nil
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
