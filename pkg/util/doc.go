// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址文本与二进制互转，严格解析、7 种输出格式
package util
