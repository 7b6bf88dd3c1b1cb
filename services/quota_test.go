package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/errors"
)

func TestCheckQuotaUnderLimit(t *testing.T) {
	assert.NoError(t, CheckQuota(0, 5))
	assert.NoError(t, CheckQuota(4, 5))
}

func TestCheckQuotaAtLimit(t *testing.T) {
	err := CheckQuota(5, 5)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeQuotaExceeded))
}

func TestCheckQuotaOverLimit(t *testing.T) {
	err := CheckQuota(6, 5)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeQuotaExceeded))
}

func TestCheckQuotaMessageContainsLimit(t *testing.T) {
	for _, quota := range []int{1, 5, 20} {
		err := CheckQuota(int64(quota), quota)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Contains(t, appErr.Message, fmt.Sprintf("%d", quota))
	}
}
