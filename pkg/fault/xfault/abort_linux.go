//go:build linux && (amd64 || arm64)

package xfault

import "github.com/omeyang/xfault/pkg/fault/xsig"

func prepareAbort(*Options) (faultFunc, error) {
	return func(*diag) error {
		// SIGABRT 已解除屏蔽且为 SIG_DFL，内核在 tgkill 返回用户态前投递信号。
		return xsig.RaiseThread(xsig.SIGABRT)
	}, nil
}
