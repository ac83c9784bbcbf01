package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xfault/pkg/fault/xfault"
	"github.com/omeyang/xfault/pkg/observability/xlog"
	"github.com/omeyang/xfault/pkg/util/xproc"
)

// exitError 命令已完成输出，只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 参数错误，退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// app 保存 Before 阶段加载的配置和日志。
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    Config
	logger xlog.LoggerWithLevel
	logOut io.Closer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, cfg: defaultConfig()}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "xfault",
		Usage:     "确定性故障注入夹具",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件（.yaml/.yml/.json）",
				Sources: cli.EnvVars("XFAULT_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug|info|warn|error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text|json",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志写入轮转文件（覆盖 log.file）",
			},
		},
		Before: a.before,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return &usageError{fmt.Errorf("unknown command %q", cmd.Args().First())}
			}
			return &usageError{errors.New("missing command (list, run)")}
		},
		Commands: []*cli.Command{
			a.listCommand(),
			a.runCommand(),
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{err}
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// before 加载配置并构建日志。命令行选项优先于配置文件。
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, &usageError{err}
	}
	if cmd.IsSet("log-level") {
		level, err := xlog.ParseLevel(cmd.String("log-level"))
		if err != nil {
			return ctx, &usageError{err}
		}
		cfg.Log.Level = level
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}

	out, closer, err := cfg.logOutput(a.stderr)
	if err != nil {
		return ctx, &usageError{err}
	}

	logger, err := xlog.New().
		SetOutput(out).
		SetLevel(cfg.Log.Level).
		SetFormat(cfg.Log.Format).
		SetAttrs(xlog.PID(xproc.ProcessID()), xlog.Process(xproc.ProcessName())).
		SetOnError(a.logFailed).
		Build()
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return ctx, &usageError{err}
	}

	a.cfg = cfg
	a.logOut = closer
	a.logger = logger
	if path := cmd.String("config"); path != "" {
		logger.Debug(ctx, "config loaded", xlog.Component("xfault"), slog.String("path", path))
	}
	return ctx, nil
}

// logFailed 日志写入失败时在 stderr 提示原因，不影响退出码。
func (a *app) logFailed(err error) {
	fmt.Fprintf(a.stderr, "xfault: write log: %v\n", err)
}

// close 关闭日志文件。
func (a *app) close() error {
	if a.logOut == nil {
		return nil
	}
	err := a.logOut.Close()
	a.logOut = nil
	return err
}

// run 执行命令行并返回退出码。
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	err := a.command().Run(context.Background(), args)
	if cerr := a.close(); cerr != nil {
		fmt.Fprintf(stderr, "xfault: close log file: %v\n", cerr)
	}
	if err == nil {
		return xfault.ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) || isCLIUsageError(err) {
		fmt.Fprintf(stderr, "xfault: %v\n", err)
		return xfault.ExitUsage
	}
	fmt.Fprintf(stderr, "xfault: %v\n", err)
	return xfault.ExitFailure
}

// isCLIUsageError 识别 urfave/cli 未经 OnUsageError 的参数错误（如子命令的未知 flag）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"flag provided but not defined", "invalid value", "No help topic"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
