package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xfault/pkg/fault/xfault"
	"github.com/omeyang/xfault/pkg/observability/xlog"
)

func (a *app) runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "在当前进程中运行夹具",
		ArgsUsage: "<fixture>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "temp-dir",
				Usage: "bus_error 后备文件目录（覆盖 fixture.temp_dir）",
			},
			&cli.StringFlag{
				Name:  "allocator",
				Usage: "use_after_free 分配器 mmap|heap（覆盖 fixture.uaf.allocator）",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{errors.New("run requires exactly one fixture name")}
			}
			cfg := a.cfg
			if cmd.IsSet("temp-dir") {
				cfg.Fixture.TempDir = cmd.String("temp-dir")
			}
			if cmd.IsSet("allocator") {
				allocator, err := xfault.ParseAllocator(cmd.String("allocator"))
				if err != nil {
					return &usageError{err}
				}
				cfg.Fixture.UAF.Allocator = string(allocator)
			}
			return a.runFixture(ctx, cmd.Args().First(), cfg)
		},
	}
}

// runFixture 运行夹具。确定性夹具成功时进程被信号终止，不会返回。
func (a *app) runFixture(ctx context.Context, name string, cfg Config) error {
	f, err := xfault.Lookup(name)
	if err != nil {
		return &usageError{fmt.Errorf("%w (available: %v)", err, xfault.Names())}
	}

	logger := a.logger.With(xlog.RunID(uuid.NewString()), xlog.Fixture(f.Name))
	logger.Info(ctx, "fixture starting", xlog.Signature(f.Signature))

	start := time.Now()
	err = f.Run(ctx, cfg.fixtureOptions(a.stderr)...)
	if err != nil {
		logger.Error(ctx, "fixture failed", xlog.Err(err), xlog.Duration(time.Since(start)))
		return &exitError{code: xfault.ExitCode(err)}
	}

	logger.Warn(ctx, "fixture returned without a fault", xlog.Duration(time.Since(start)))
	return nil
}
