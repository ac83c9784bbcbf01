package xfault

import (
	"bufio"
	"io"
)

// diagPrefix 是诊断行标签的命名空间。
const diagPrefix = "xfault/"

// diag 写出诊断行。每行写完立即 Flush：故障由内核默认处置终止进程，
// 缓冲区中残留的内容永远不会被输出。
type diag struct {
	w   *bufio.Writer
	tag string
}

func newDiag(w io.Writer, name string) *diag {
	return &diag{w: bufio.NewWriter(w), tag: "[" + diagPrefix + name + "] "}
}

// line 写出 "[xfault/<name>] <msg>\n" 并 Flush。
func (d *diag) line(msg string) error {
	d.w.WriteString(d.tag)
	d.w.WriteString(msg)
	d.w.WriteByte('\n')
	return d.w.Flush()
}
