package xfault

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Allocator 选择 use_after_free 使用的分配器。
type Allocator string

const (
	// AllocatorMmap 使用匿名 mmap/munmap，相当于 glibc 对超过 mmap 阈值的块的处理。
	// 释放后内存归还内核，写入通常触发 SIGSEGV。
	AllocatorMmap Allocator = "mmap"

	// AllocatorHeap 使用 Go 堆：块被回收并经 debug.FreeOSMemory 归还，
	// 但 Go 不会解除堆 arena 的映射，写入通常"成功"并可能破坏重新分配的对象。
	AllocatorHeap Allocator = "heap"
)

// ParseAllocator 解析分配器名称（大小写不敏感，空值视为 mmap）。
func ParseAllocator(s string) (Allocator, error) {
	switch Allocator(strings.ToLower(strings.TrimSpace(s))) {
	case "", AllocatorMmap:
		return AllocatorMmap, nil
	case AllocatorHeap:
		return AllocatorHeap, nil
	default:
		return "", fmt.Errorf("%w: unknown allocator %q", ErrInvalidOptions, s)
	}
}

const (
	// DefaultStackFrameSize 每层栈帧大小，一个 4 KiB 页。
	DefaultStackFrameSize = 4096

	// DefaultUAFBlockSize use_after_free 分配块大小（1 MiB，高于 glibc 默认 mmap 阈值 128 KiB）。
	DefaultUAFBlockSize = 1 << 20

	minStackFrameSize = 16
	maxStackFrameSize = 1 << 16
	maxUAFBlockSize   = 1 << 30
)

// Options 夹具运行选项。零值字段使用默认值。
type Options struct {
	// Output 诊断流，默认 os.Stderr。
	Output io.Writer

	// TempDir bus_error 后备文件所在目录，默认 os.TempDir()。
	TempDir string

	// StackFrameSize stack_overflow 每层帧大小，须为 16 的倍数，范围 [16, 65536]。
	StackFrameSize int

	// UAFBlockSize use_after_free 块大小，范围 (0, 1 GiB]。
	UAFBlockSize int

	// UAFAllocator use_after_free 分配器。
	UAFAllocator Allocator
}

// Option 定义选项函数类型。
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Output:         os.Stderr,
		StackFrameSize: DefaultStackFrameSize,
		UAFBlockSize:   DefaultUAFBlockSize,
		UAFAllocator:   AllocatorMmap,
	}
}

// WithOutput 设置诊断流。nil 被忽略。
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

// WithTempDir 设置 bus_error 后备文件目录。
func WithTempDir(dir string) Option {
	return func(o *Options) {
		o.TempDir = dir
	}
}

// WithStackFrameSize 设置 stack_overflow 每层帧大小。0 表示默认值。
func WithStackFrameSize(n int) Option {
	return func(o *Options) {
		if n != 0 {
			o.StackFrameSize = n
		}
	}
}

// WithUAFBlockSize 设置 use_after_free 块大小。0 表示默认值。
func WithUAFBlockSize(n int) Option {
	return func(o *Options) {
		if n != 0 {
			o.UAFBlockSize = n
		}
	}
}

// WithUAFAllocator 设置 use_after_free 分配器。空值表示默认值。
func WithUAFAllocator(a Allocator) Option {
	return func(o *Options) {
		if a != "" {
			o.UAFAllocator = a
		}
	}
}

// validate 检查取值范围并规范化分配器名称。
func (o *Options) validate() error {
	if o.StackFrameSize < minStackFrameSize || o.StackFrameSize > maxStackFrameSize || o.StackFrameSize%16 != 0 {
		return fmt.Errorf("%w: stack frame size %d must be a multiple of 16 in [%d, %d]",
			ErrInvalidOptions, o.StackFrameSize, minStackFrameSize, maxStackFrameSize)
	}
	if o.UAFBlockSize <= 0 || o.UAFBlockSize > maxUAFBlockSize {
		return fmt.Errorf("%w: use-after-free block size %d out of range (0, %d]",
			ErrInvalidOptions, o.UAFBlockSize, maxUAFBlockSize)
	}
	a, err := ParseAllocator(string(o.UAFAllocator))
	if err != nil {
		return err
	}
	o.UAFAllocator = a
	return nil
}
