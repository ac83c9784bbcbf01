// Package xjson 输出缩进格式的 JSON。
//
// [Encode] 用于命令行的机器可读输出（如 xfault list --json）：两空格缩进、
// 末尾换行、不转义 HTML 字符，失败时返回 [ErrMarshal] 包装的错误。
// [Pretty] 用于日志和调试，失败时返回 "<marshal error: ...>"。
package xjson
