package xsig

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalName(t *testing.T) {
	tests := []struct {
		sig  syscall.Signal
		want string
	}{
		{SIGILL, "SIGILL"},
		{SIGABRT, "SIGABRT"},
		{SIGBUS, "SIGBUS"},
		{SIGFPE, "SIGFPE"},
		{SIGSEGV, "SIGSEGV"},
		{syscall.Signal(15), "SIG15"},
		{syscall.Signal(0), "SIG0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SignalName(tt.sig))
	}
}

func TestCodeName(t *testing.T) {
	tests := []struct {
		name string
		sig  syscall.Signal
		code int32
		want string
	}{
		{"segv_maperr", SIGSEGV, SegvMapErr, "SEGV_MAPERR"},
		{"segv_accerr", SIGSEGV, SegvAccErr, "SEGV_ACCERR"},
		{"bus_adraln", SIGBUS, BusAdrAln, "BUS_ADRALN"},
		{"bus_adrerr", SIGBUS, BusAdrErr, "BUS_ADRERR"},
		{"fpe_intdiv", SIGFPE, FpeIntDiv, "FPE_INTDIV"},
		{"fpe_fltdiv", SIGFPE, FpeFltDiv, "FPE_FLTDIV"},
		{"ill_illopc", SIGILL, IllIllOpc, "ILL_ILLOPC"},
		{"ill_illopn", SIGILL, IllIllOpn, "ILL_ILLOPN"},
		// 同一数值在不同信号下含义不同
		{"same_value_other_signal", SIGBUS, SegvMapErr, "BUS_ADRALN"},
		{"tkill", SIGABRT, SITkill, "SI_TKILL"},
		{"user", SIGABRT, SIUser, "SI_USER"},
		{"kernel", SIGSEGV, SIKernel, "SI_KERNEL"},
		{"any", SIGABRT, CodeAny, "*"},
		{"unknown", SIGABRT, 42, "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeName(tt.sig, tt.code))
		})
	}
}

func TestIsCrashSignal(t *testing.T) {
	for _, sig := range []syscall.Signal{SIGILL, SIGABRT, SIGBUS, SIGFPE, SIGSEGV} {
		assert.True(t, IsCrashSignal(sig), SignalName(sig))
	}
	for _, sig := range []syscall.Signal{0, 1, 9, 15, 17} {
		assert.False(t, IsCrashSignal(sig), SignalName(sig))
	}
}
