// Package xlog 提供基于 [log/slog] 的结构化日志。
//
// 使用 Builder 构建 Logger，所有日志方法都接收 context.Context，
// 属性只接受 slog.Attr：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "address parsed", xlog.Input("00:11:22:33:44:55"))
//
// 设置 [Builder.SetRotation] 后输出写入文件，按大小轮转（lumberjack）。
package xlog
