//go:build linux && (amd64 || arm64)

package xfault

// nullTarget 始终为 nil。
var nullTarget *int32

func prepareSegfault(*Options) (faultFunc, error) {
	return func(*diag) error {
		*nullTarget = 42
		return nil
	}, nil
}
