// Package xmac 在 MAC 地址的文本表示与 6 字节二进制形式之间转换。
//
// 两个方向互相独立、无状态、可并发调用：
//
//   - [Parse]：文本 → [Addr]，只接受 17 字符的 HH:HH:HH:HH:HH:HH / HH-HH-HH-HH-HH-HH
//   - [FormatTo]：[Addr] → 调用方缓冲区，支持 7 种输出格式
//
// # 快速示例
//
//	addr, err := xmac.Parse("00:11:22:33:44:55")
//	if err != nil {
//	    return err
//	}
//
//	var buf [18]byte
//	n, err := xmac.FormatTo(addr, xmac.FormatCisco, buf[:])
//	fmt.Println(string(buf[:n]))            // 0011.2233.4455
//	fmt.Println(addr.FormatString(xmac.FormatPacked)) // 001122334455
//
// # 输出格式
//
//	格式                 示例                 最小缓冲区
//	Format802Canon      00-11-22-33-44-55   18（默认）
//	FormatUnix          00:11:22:33:44:55   18
//	FormatSunUnix       0:11:22:33:44:55    18
//	FormatCisco         0011.2233.4455      15
//	Format802CanonLower 00-11-22-33-44-55   18
//	FormatPacked        001122334455        12
//	FormatPackedLower   001122334455        12
//
// 最小缓冲区沿用 C 库 enet_ntop 的约定：分隔格式预留了结尾 NUL 的位置。
// Go 切片自带长度，[FormatTo] 不写 NUL，但仍按表中下限校验容量。
//
// # 解析规则
//
// 有效长度（第一个 NUL 之前的字节数）必须恰好为 17。之后逐位置校验：
// 数字位置必须是十六进制字符，分隔位置必须是 ':' 或 '-'，
// 各分隔位置独立判断，因此 "00:11-22:33-44:55" 合法。
// 校验全部通过后才开始解码，失败时不会产生部分结果。
//
// 不做语义校验：多播、广播、本地管理地址均按普通地址处理。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xmac.Parse("00;11:22:33:44:55")
//	if errors.Is(err, xmac.ErrBadSeparator) {
//	    // 索引 2 不是分隔符
//	}
package xmac
