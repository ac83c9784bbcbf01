//go:build linux && (amd64 || arm64)

package xfault

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/omeyang/xfault/pkg/util/xfile"
)

// busFilePattern 后备文件名模式。
const busFilePattern = "bustest_*"

var (
	mmap     = unix.Mmap
	munmap   = unix.Munmap
	pageSize = unix.Getpagesize
)

// truncatedMapping 两页共享映射，后备文件只有 1 字节，第二页完全位于 EOF 之后。
type truncatedMapping struct {
	file *os.File
	mem  []byte
	page int
}

func mapBeyondEOF(dir string) (*truncatedMapping, error) {
	f, err := xfile.CreateBackingFile(dir, busFilePattern, []byte{'x'})
	if err != nil {
		return nil, err
	}

	page := pageSize()
	mem, err := mmap(int(f.Fd()), 0, 2*page, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("mmap %s: %w", f.Name(), err), f.Close(), os.Remove(f.Name()))
	}
	return &truncatedMapping{file: f, mem: mem, page: page}, nil
}

func (m *truncatedMapping) release() error {
	return errors.Join(munmap(m.mem), m.file.Close(), os.Remove(m.file.Name()))
}

// prepareBusError 不做任何可能失败的准备：后备文件在诊断行写出之后才创建，
// 临时目录不可用时错误出现在诊断行之后。
func prepareBusError(o *Options) (faultFunc, error) {
	dir := o.TempDir
	return func(*diag) error {
		m, err := mapBeyondEOF(dir)
		if err != nil {
			return err
		}
		m.mem[m.page] = 'A'

		// 以下仅在未触发 SIGBUS 时执行。
		return m.release()
	}, nil
}
