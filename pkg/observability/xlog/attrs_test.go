package xlog_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/omeyang/xfault/pkg/fault/xsig"
	"github.com/omeyang/xfault/pkg/observability/xlog"
)

func TestAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"err", xlog.Err(errors.New("boom")), xlog.KeyError, "boom"},
		{"duration", xlog.Duration(1500 * time.Millisecond), xlog.KeyDuration, "1.5s"},
		{"component", xlog.Component("cli"), xlog.KeyComponent, "cli"},
		{"operation", xlog.Operation("run"), xlog.KeyOperation, "run"},
		{"pid", xlog.PID(7), xlog.KeyPID, "7"},
		{"process", xlog.Process("fault-abort"), xlog.KeyProcess, "fault-abort"},
		{"run id", xlog.RunID("abc"), xlog.KeyRunID, "abc"},
		{"fixture", xlog.Fixture("divzero"), xlog.KeyFixture, "divzero"},
		{
			"signature",
			xlog.Signature(xsig.Signature{Signal: xsig.SIGFPE, Code: xsig.FpeIntDiv, Addr: xsig.AddrNone, Deterministic: true}),
			xlog.KeySignature,
			"SIGFPE/FPE_INTDIV addr=none",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}

func TestErr_Nil(t *testing.T) {
	assert.True(t, xlog.Err(nil).Equal(slog.Attr{}))
}
