package xsys

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStackLimit_ZeroValue(t *testing.T) {
	// 参数校验在所有平台上行为一致。
	err := SetStackLimit(0)
	require.ErrorIs(t, err, ErrInvalidStackLimit)
}

func TestGetStackLimit(t *testing.T) {
	if runtime.GOOS == "windows" {
		_, _, err := GetStackLimit()
		require.ErrorIs(t, err, ErrUnsupportedPlatform)
		return
	}

	soft, hard, err := GetStackLimit()
	require.NoError(t, err)
	assert.Greater(t, soft, uint64(0))
	assert.GreaterOrEqual(t, hard, soft)
}
