package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xfault/pkg/fault/xfault"
	"github.com/omeyang/xfault/pkg/observability/xlog"
	"github.com/omeyang/xfault/pkg/observability/xrotate"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xfault.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
fixture:
  temp_dir: /var/tmp/xfault
  stack_frame_size: 8192
  uaf:
    allocator: HEAP
`), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, xlog.LevelWarn, cfg.Log.Level)
	assert.Equal(t, xlog.FormatText, cfg.Log.Format, "absent key keeps default")
	assert.Equal(t, "/var/tmp/xfault", cfg.Fixture.TempDir)
	assert.Equal(t, 8192, cfg.Fixture.StackFrameSize)
	assert.Equal(t, xfault.DefaultUAFBlockSize, cfg.Fixture.UAF.BlockSize)
	assert.Equal(t, "HEAP", cfg.Fixture.UAF.Allocator)
}

func TestLoadConfig_BadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xfault.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestFixtureOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Fixture.UAF.Allocator = "heap"

	var out bytes.Buffer
	opts := cfg.fixtureOptions(&out)
	assert.Len(t, opts, 5)

	f, err := xfault.Lookup(xfault.NameSegfault)
	require.NoError(t, err)

	// 非法帧大小在写出诊断行之前被拒绝
	cfg.Fixture.StackFrameSize = 100
	err = f.Run(t.Context(), cfg.fixtureOptions(&out)...)
	assert.ErrorIs(t, err, xfault.ErrInvalidOptions)
	assert.Zero(t, out.Len())
}

func TestBinaryName(t *testing.T) {
	assert.Equal(t, "fault-bus-error", binaryName(xfault.NameBusError))
	assert.Equal(t, "fault-illegal-instruction", binaryName(xfault.NameIllegalInstruction))
	assert.Equal(t, "fault-abort", binaryName(xfault.NameAbort))
}

func TestLogOutput(t *testing.T) {
	cfg := defaultConfig()
	var stderr bytes.Buffer

	out, closer, err := cfg.logOutput(&stderr)
	require.NoError(t, err)
	assert.Same(t, &stderr, out)
	assert.Nil(t, closer)

	cfg.Log.File = filepath.Join(t.TempDir(), "xfault.log")
	cfg.Log.MaxSizeMB = 1
	out, closer, err = cfg.logOutput(&stderr)
	require.NoError(t, err)
	require.NotNil(t, closer)
	_, err = out.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	cfg.Log.MaxSizeMB = 0
	_, _, err = cfg.logOutput(&stderr)
	assert.ErrorIs(t, err, xrotate.ErrInvalidMaxSize)
}
