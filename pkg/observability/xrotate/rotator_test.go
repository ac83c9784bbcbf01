package xrotate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xfault/pkg/util/xfile"
)

func TestNewLumberjack_WritesAndCreatesDir(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "logs", "xfault.log")

	r, err := NewLumberjack(filename, WithMaxSize(1), WithMaxBackups(2), WithMaxAge(1), WithLocalTime(true))
	require.NoError(t, err)

	_, err = r.Write([]byte("fixture starting\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "fixture starting\n", string(data))
}

func TestNewLumberjack_NilOptionIgnored(t *testing.T) {
	r, err := NewLumberjack(filepath.Join(t.TempDir(), "a.log"), nil, WithCompress(false), nil)
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func TestNewLumberjack_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero size", []Option{WithMaxSize(0)}, ErrInvalidMaxSize},
		{"huge size", []Option{WithMaxSize(maxSizeMB + 1)}, ErrInvalidMaxSize},
		{"negative backups", []Option{WithMaxBackups(-1)}, ErrInvalidMaxBackups},
		{"too many backups", []Option{WithMaxBackups(maxBackups + 1)}, ErrInvalidMaxBackups},
		{"negative age", []Option{WithMaxAge(-1)}, ErrInvalidMaxAge},
		{"no cleanup", []Option{WithMaxBackups(0), WithMaxAge(0)}, ErrNoCleanupPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLumberjack(filepath.Join(dir, "x.log"), tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewLumberjack_InvalidPath(t *testing.T) {
	_, err := NewLumberjack("")
	assert.ErrorIs(t, err, xfile.ErrEmptyPath)

	_, err = NewLumberjack("/var/log/../../etc/x.log")
	assert.ErrorIs(t, err, xfile.ErrPathTraversal)

	_, err = NewLumberjack(t.TempDir() + "/")
	assert.ErrorIs(t, err, xfile.ErrInvalidPath)
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "xfault.log")

	r, err := NewLumberjack(filename)
	require.NoError(t, err)

	_, err = r.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, r.Rotate())
	_, err = r.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "current file plus one backup")
}

func TestClosed(t *testing.T) {
	r, err := NewLumberjack(filepath.Join(t.TempDir(), "c.log"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = r.Write([]byte("late"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
	assert.ErrorIs(t, r.Close(), ErrClosed)
}
