package xfault

import "github.com/omeyang/xfault/pkg/fault/xsig"

// x86-64 上 #UD 异常由内核以 ILL_ILLOPN 上报。
const (
	illegalCode   = xsig.IllIllOpn
	illegalAction = "Executing UD2 (undefined instruction)"
)
