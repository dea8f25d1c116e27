package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// exitError 表示需要非零退出码但输出已完成的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，对应退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// wrapUsageError 将 urfave/cli 的 flag 解析错误统一为 usageError。
func wrapUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}
