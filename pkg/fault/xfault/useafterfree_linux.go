//go:build linux && (amd64 || arm64)

package xfault

import (
	"fmt"
	"runtime/debug"
	"unsafe"

	"golang.org/x/sys/unix"
)

func prepareUseAfterFree(o *Options) (faultFunc, error) {
	if o.UAFAllocator == AllocatorHeap {
		return heapUseAfterFree(o.UAFBlockSize), nil
	}
	return mmapUseAfterFree(o.UAFBlockSize), nil
}

func fill(b []byte, c byte) {
	for i := range b {
		b[i] = c
	}
}

func anonBlock(size int) ([]byte, error) {
	b, err := mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return b, nil
}

// mmapUseAfterFree 释放的块直接归还内核，悬空切片指向已解除映射的地址。
// 其他线程的 mmap 可能在写入前复用这段地址，此时写入破坏别人的数据而不崩溃。
func mmapUseAfterFree(size int) faultFunc {
	return func(d *diag) error {
		block, err := anonBlock(size)
		if err != nil {
			return err
		}
		fill(block, 'A')
		if err := munmap(block); err != nil {
			return fmt.Errorf("munmap: %w", err)
		}

		second, err := anonBlock(size)
		if err != nil {
			return err
		}
		if err := munmap(second); err != nil {
			return fmt.Errorf("munmap: %w", err)
		}

		if err := d.line(freedWriteLine); err != nil {
			return err
		}
		fill(block, 'B')
		return nil
	}
}

// heapSink 防止编译器消除第二次分配。
var heapSink []byte

//go:noinline
func heapBlock(size int, c byte) uintptr {
	b := make([]byte, size)
	fill(b, c)
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// heapUseAfterFree 只保留 Go 堆块的地址，块被回收并经 FreeOSMemory 归还后再写入。
// Go 不会解除堆 arena 的映射，被归还的页在下次访问时由内核补零，写入通常不会崩溃。
func heapUseAfterFree(size int) faultFunc {
	return func(d *diag) error {
		addr := heapBlock(size, 'A')
		debug.FreeOSMemory()

		heapSink = make([]byte, size)
		heapSink = nil
		debug.FreeOSMemory()

		// 悬空指针存在期间不能再有 GC：扫描到指向空闲 span 的指针会使运行时 fatal。
		debug.SetGCPercent(-1)

		if err := d.line(freedWriteLine); err != nil {
			return err
		}
		//nolint:govet // 故意从 uintptr 恢复已释放对象的指针
		fill(unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), 'B')
		return nil
	}
}
