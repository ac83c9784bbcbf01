//go:build linux && (amd64 || arm64)

package xfault

import (
	"fmt"
	"runtime/debug"

	"github.com/omeyang/xfault/pkg/util/xproc"
	"github.com/omeyang/xfault/pkg/util/xsys"
)

// 汇编读取的包级变量。
var (
	// stackFrame 每层从 SP 减去的字节数。
	stackFrame uintptr = DefaultStackFrameSize

	// stackDepth 已下探的层数，其低字节写入每层帧的栈顶。
	stackDepth uint64
)

var (
	isMainThread  = xproc.IsMainThread
	stackRegion   = xsys.StackRegion
	getStackLimit = xsys.GetStackLimit
	setStackLimit = xsys.SetStackLimit
)

// overflowFrom 把 SP 切换到 top 后无限下探：每层减去 stackFrame，
// 经 CALL 压入返回地址并写入深度字节，从不回退。不会返回。
func overflowFrom(top uintptr)

func prepareStackOverflow(o *Options) (faultFunc, error) {
	if !isMainThread() {
		return nil, ErrNotMainThread
	}

	region, err := stackRegion()
	if err != nil {
		return nil, err
	}

	// 栈不受限时内核不会在有限深度拒绝扩展。
	soft, _, err := getStackLimit()
	if err != nil {
		return nil, err
	}
	if soft == xsys.Unlimited {
		if err := setStackLimit(xsys.DefaultStackLimit); err != nil {
			return nil, fmt.Errorf("lower RLIMIT_STACK: %w", err)
		}
	}

	stackFrame = uintptr(o.StackFrameSize)
	stackDepth = 0
	// 从映射低端开始，主线程在 [stack] 高端的既有帧保持不变。
	top := region.Start

	return func(*diag) error {
		debug.SetGCPercent(-1)
		overflowFrom(top)
		return nil
	}, nil
}
