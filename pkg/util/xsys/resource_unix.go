//go:build unix

package xsys

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var (
	getrlimit = unix.Getrlimit
	setrlimit = unix.Setrlimit
)

// stackLimitMu 保护 SetStackLimit 的 getrlimit→setrlimit 读改写序列。
var stackLimitMu sync.Mutex

// SetStackLimit 设置 RLIMIT_STACK 的 soft limit。
//
// 只修改 soft limit：limit 超过 hard limit 时截断到 hard limit，不尝试提升 hard limit。
// 新的 soft limit 对主线程栈的后续增长立即生效（内核在缺页扩展栈时检查该值）。
// 并发安全：内部使用互斥锁保护读改写序列。
func SetStackLimit(limit uint64) error {
	if err := validateStackLimit(limit); err != nil {
		return err
	}

	stackLimitMu.Lock()
	defer stackLimitMu.Unlock()

	var rlimit unix.Rlimit
	if err := getrlimit(unix.RLIMIT_STACK, &rlimit); err != nil {
		return fmt.Errorf("xsys: getrlimit RLIMIT_STACK: %w", err)
	}

	rlimit.Cur = min(limit, rlimit.Max)

	if err := setrlimit(unix.RLIMIT_STACK, &rlimit); err != nil {
		return fmt.Errorf("xsys: setrlimit RLIMIT_STACK: %w", err)
	}
	return nil
}

// GetStackLimit 查询 RLIMIT_STACK，返回 soft limit 和 hard limit。
// 无限制时对应值为 [Unlimited]。
func GetStackLimit() (soft, hard uint64, err error) {
	var rlimit unix.Rlimit
	if err := getrlimit(unix.RLIMIT_STACK, &rlimit); err != nil {
		return 0, 0, fmt.Errorf("xsys: getrlimit RLIMIT_STACK: %w", err)
	}
	return rlimit.Cur, rlimit.Max, nil
}
