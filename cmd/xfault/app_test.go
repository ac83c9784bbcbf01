package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(append([]string{"xfault"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList_Text(t *testing.T) {
	code, stdout, _ := runArgs(t, "list")
	require.Equal(t, xfault.ExitOK, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	for i, name := range []string{
		"abort", "bus_error", "divzero", "illegal_instruction",
		"segfault", "stack_overflow", "use_after_free",
	} {
		assert.True(t, strings.HasPrefix(lines[i+1], name+" "), lines[i+1])
	}
	assert.Contains(t, stdout, "fault-bus-error")
	assert.Contains(t, stdout, "SIGBUS/BUS_ADRERR addr=beyond-eof")
	assert.Contains(t, stdout, "(nondeterministic)")
}

func TestList_JSON(t *testing.T) {
	code, stdout, _ := runArgs(t, "list", "--json")
	require.Equal(t, xfault.ExitOK, code)

	var entries []struct {
		Name      string `json:"name"`
		Binary    string `json:"binary"`
		Action    string `json:"action"`
		Signature struct {
			Signal        int    `json:"signal"`
			SignalName    string `json:"signal_name"`
			Code          *int32 `json:"code"`
			CodeName      string `json:"code_name"`
			Addr          string `json:"addr"`
			Deterministic bool   `json:"deterministic"`
		} `json:"signature"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 7)

	abort := entries[0]
	assert.Equal(t, "abort", abort.Name)
	assert.Equal(t, "fault-abort", abort.Binary)
	assert.Equal(t, "Calling abort()", abort.Action)
	assert.Equal(t, 6, abort.Signature.Signal)
	assert.Nil(t, abort.Signature.Code)

	segv := entries[4]
	assert.Equal(t, "segfault", segv.Name)
	require.NotNil(t, segv.Signature.Code)
	assert.Equal(t, int32(1), *segv.Signature.Code)
	assert.Equal(t, "SEGV_MAPERR", segv.Signature.CodeName)
	assert.Equal(t, "near-zero", segv.Signature.Addr)

	assert.False(t, entries[6].Signature.Deterministic)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "missing command"},
		{"unknown command", []string{"explode"}, `unknown command "explode"`},
		{"run without fixture", []string{"run"}, "exactly one fixture"},
		{"run two fixtures", []string{"run", "abort", "segfault"}, "exactly one fixture"},
		{"unknown fixture", []string{"run", "heap_spray"}, "unknown fixture"},
		{"bad allocator", []string{"run", "--allocator", "jemalloc", "use_after_free"}, "unknown allocator"},
		{"bad log level", []string{"--log-level", "loud", "list"}, "unknown level"},
		{"bad log format", []string{"--log-format", "xml", "list"}, "unknown format"},
		{"missing config", []string{"-c", "/nonexistent/xfault.yaml", "list"}, "failed to load config"},
		{"unsupported config", []string{"-c", "xfault.toml", "list"}, "unsupported config format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runArgs(t, tt.args...)
			assert.Equal(t, xfault.ExitUsage, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	code, _, _ := runArgs(t, "--nope", "list")
	assert.Equal(t, xfault.ExitUsage, code)
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runArgs(t, "--version")
	assert.Equal(t, xfault.ExitOK, code)
	assert.Contains(t, stdout, Version)
}

func TestConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xfault.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fixture":{"uaf":{"allocator":"tcmalloc"}}}`), 0o600))
	t.Setenv("XFAULT_CONFIG", path)

	code, _, stderr := runArgs(t, "list")
	assert.Equal(t, xfault.ExitUsage, code)
	assert.Contains(t, stderr, "fixture.uaf.allocator")
}

func TestDebugLogsConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xfault.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\n"), 0o600))

	code, _, stderr := runArgs(t, "-c", path, "list")
	require.Equal(t, xfault.ExitOK, code)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &rec), stderr)
	assert.Equal(t, "config loaded", rec["msg"])
	assert.Equal(t, path, rec["path"])
	assert.NotNil(t, rec["pid"])
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "xfault.log")
	cfgPath := filepath.Join(dir, "xfault.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: debug\n  format: json\n"), 0o600))

	code, _, stderr := runArgs(t, "-c", cfgPath, "--log-file", logPath, "list")
	require.Equal(t, xfault.ExitOK, code)
	assert.Empty(t, stderr, "logs go to the file")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"config loaded"`)
}

func TestLogFile_Invalid(t *testing.T) {
	code, _, stderr := runArgs(t, "--log-file", t.TempDir()+"/", "list")
	assert.Equal(t, xfault.ExitUsage, code)
	assert.Contains(t, stderr, "log.file")
}

func TestLogFailed(t *testing.T) {
	var stderr bytes.Buffer
	a := newApp(&bytes.Buffer{}, &stderr)
	a.logFailed(os.ErrClosed)
	assert.Equal(t, "xfault: write log: file already closed\n", stderr.String())
}
