package xlog_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/omeyang/xfault/pkg/observability/xlog"
)

func ExampleBuilder() {
	logger, err := xlog.New().
		SetOutput(os.Stdout).
		SetReplaceAttr(func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}).
		Build()
	if err != nil {
		return
	}

	logger.Info(context.Background(), "fixture starting",
		xlog.Fixture("segfault"), xlog.RunID("7d3c"))
	// Output: level=INFO msg="fixture starting" fixture=segfault run_id=7d3c
}
