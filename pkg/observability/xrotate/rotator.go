package xrotate

import "io"

// Rotator 日志轮转器，可直接作为 xlog 的输出目标。并发安全。
//
// Close 之后 Write 与 Rotate 返回 [ErrClosed]，重复 Close 也返回 [ErrClosed]。
type Rotator interface {
	io.WriteCloser

	// Rotate 立即轮转：当前文件改名为备份，随后的写入进入新文件。
	Rotate() error
}
