//go:build !linux || !(amd64 || arm64)

package xfault

func unsupported(*Options) (faultFunc, error) {
	return nil, ErrUnsupportedPlatform
}

var (
	prepareAbort              = unsupported
	prepareBusError           = unsupported
	prepareDivZero            = unsupported
	prepareIllegalInstruction = unsupported
	prepareSegfault           = unsupported
	prepareStackOverflow      = unsupported
	prepareUseAfterFree       = unsupported
)
