package xlog_test

import (
	"strings"
	"testing"

	"github.com/omeyang/xfault/pkg/observability/xlog"
)

func FuzzParseLevel(f *testing.F) {
	for _, s := range []string{"debug", "INFO", " warn", "warning", "error", "", "x"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		l, err := xlog.ParseLevel(s)
		if err != nil {
			return
		}
		// 解析成功的级别经 String 往返后不变
		back, err := xlog.ParseLevel(strings.ToLower(l.String()))
		if err != nil || back != l {
			t.Fatalf("ParseLevel(%q) = %v, round trip = %v, %v", s, l, back, err)
		}
	})
}
