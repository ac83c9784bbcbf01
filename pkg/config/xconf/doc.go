// Package xconf 基于 koanf 加载 YAML/JSON 配置。
//
// xconf 只负责读取、解析和反序列化；默认值和取值校验由使用方在 Unmarshal 之后完成。
//
//	cfg, err := xconf.New("xfault.yaml")
//	if err != nil {
//		return err
//	}
//	var c AppConfig
//	if err := cfg.Unmarshal("", &c); err != nil {
//		return err
//	}
//
// 格式由扩展名决定：.yaml/.yml 为 YAML，.json 为 JSON。
// 空文件或空数据得到空配置，Unmarshal 不修改目标中已有的默认值。
//
// Unmarshal 使用 mapstructure 弱类型转换（字符串 "4096" 可以解码为 int），
// 并对实现 encoding.TextUnmarshaler 的字段调用 UnmarshalText。
package xconf
