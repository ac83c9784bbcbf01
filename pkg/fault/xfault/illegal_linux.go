//go:build linux && (amd64 || arm64)

package xfault

// undefinedInstruction 执行体系结构保留的未定义指令。
func undefinedInstruction()

func prepareIllegalInstruction(*Options) (faultFunc, error) {
	return func(*diag) error {
		undefinedInstruction()
		return nil
	}, nil
}
