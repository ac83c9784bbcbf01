package xproc

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessID(t *testing.T) {
	pid := ProcessID()
	assert.Greater(t, pid, 0)
	assert.Equal(t, os.Getpid(), pid)
}

func TestProcessName(t *testing.T) {
	resetNameCache()
	t.Cleanup(resetNameCache)

	name := ProcessName()
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, string(os.PathSeparator))
}

// withArgsFallback 让 os.Executable 失败并设置 os.Args，强制走回退路径。
// 修改包级变量与 os.Args，不可使用 t.Parallel()。
func withArgsFallback(t *testing.T, args []string) {
	t.Helper()
	origExec, origArgs := executable, os.Args
	t.Cleanup(func() {
		executable, os.Args = origExec, origArgs
		resetNameCache()
	})
	executable = func() (string, error) { return "", errors.New("not supported") }
	os.Args = args
	resetNameCache()
}

func TestProcessName_EmptyArgs(t *testing.T) {
	withArgsFallback(t, nil)
	assert.Equal(t, "", ProcessName())
}

func TestProcessName_EmptyArg0(t *testing.T) {
	// os.Args[0] 为空字符串时应返回 ""，而非 filepath.Base("") 的 "."
	withArgsFallback(t, []string{""})
	assert.Equal(t, "", ProcessName())
}

func TestProcessName_PathStripping(t *testing.T) {
	withArgsFallback(t, []string{"/usr/local/bin/fault-segfault"})
	assert.Equal(t, "fault-segfault", ProcessName())
}

func TestProcessName_Cached(t *testing.T) {
	withArgsFallback(t, []string{"first"})
	assert.Equal(t, "first", ProcessName())

	os.Args = []string{"second"}
	assert.Equal(t, "first", ProcessName())
}

func TestProcessName_ExecutablePreferred(t *testing.T) {
	origExec := executable
	t.Cleanup(func() {
		executable = origExec
		resetNameCache()
	})
	executable = func() (string, error) { return "/opt/xfault/bin/xfault", nil }
	resetNameCache()

	assert.Equal(t, "xfault", ProcessName())
}
