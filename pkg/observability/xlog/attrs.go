package xlog

import (
	"log/slog"
	"time"

	"github.com/omeyang/xfault/pkg/fault/xsig"
)

// 常用属性 key
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyPID       = "pid"
	KeyProcess   = "process"
	KeyRunID     = "run_id"
	KeyFixture   = "fixture"
	KeySignature = "signature"
)

// Err 创建错误属性，err 为 nil 时返回空属性（被 slog 忽略）
//
//	if err != nil {
//	    logger.Error(ctx, "fixture failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

func PID(pid int) slog.Attr {
	return slog.Int(KeyPID, pid)
}

func Process(name string) slog.Attr {
	return slog.String(KeyProcess, name)
}

// RunID 一次夹具运行的标识
func RunID(id string) slog.Attr {
	return slog.String(KeyRunID, id)
}

func Fixture(name string) slog.Attr {
	return slog.String(KeyFixture, name)
}

// Signature 以 "SIGSEGV/SEGV_MAPERR addr=near-zero" 形式记录期望的故障特征
func Signature(sig xsig.Signature) slog.Attr {
	return slog.String(KeySignature, sig.String())
}
