package xjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMarshal 表示序列化失败。
var ErrMarshal = errors.New("xjson: marshal failed")

const indent = "  "

// Encode 将 v 以缩进格式写入 w，末尾带换行。
// 序列化完成后才写入 w，失败时 w 不会收到部分输出。
func Encode(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Pretty 将 v 序列化为缩进格式的字符串（不带末尾换行）。
func Pretty(v any) string {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
