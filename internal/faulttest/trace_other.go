//go:build !linux || !(amd64 || arm64)

package faulttest

import "context"

// Trace 在不支持的平台上返回 [ErrTraceUnsupported]。
func Trace(context.Context, string, ...RunOption) (Outcome, error) {
	return Outcome{}, ErrTraceUnsupported
}
