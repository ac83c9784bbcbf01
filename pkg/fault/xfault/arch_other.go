//go:build !amd64 && !arm64

package xfault

import "github.com/omeyang/xfault/pkg/fault/xsig"

const (
	illegalCode   = xsig.IllIllOpc
	illegalAction = "Executing undefined instruction"
)
