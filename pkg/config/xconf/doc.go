// Package xconf 基于 koanf 加载 YAML/JSON 配置。
//
// 适用于命令行工具的一次性加载：读取文件或字节数据，按 koanf 标签反序列化到结构体。
//
//	cfg, err := xconf.Load("xmacctl.yaml")
//	if err != nil {
//	    return err
//	}
//	var app AppConfig
//	if err := cfg.Unmarshal("", &app); err != nil {
//	    return err
//	}
//
// 实现了 [encoding.TextUnmarshaler] 的字段（如 xmac.Format）会按文本解码。
package xconf
