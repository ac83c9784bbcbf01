package xfault

import "github.com/omeyang/xfault/pkg/fault/xsig"

const (
	illegalCode   = xsig.IllIllOpc
	illegalAction = "Executing UDF #0 (undefined instruction)"
)
