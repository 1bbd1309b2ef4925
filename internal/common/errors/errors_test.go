// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeProviderUnreachable, 3},
		{ErrCodeLLMRequestFailed, 3},
		{ErrCodeProviderTimeout, 2},
		{ErrCodeRateLimited, 2},
		{ErrCodeLLMTimeout, 1},
		{ErrCodeSymbolNotFound, 0},
		{ErrCodeValidationFailed, 0},
		{ErrCodeMissingAPIKey, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetRetryCount(tt.code))
			assert.Equal(t, tt.expected > 0, IsRetryableErrorCode(tt.code))
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeProviderUnreachable, "PROVIDER"},
		{ErrCodeRateLimited, "PROVIDER"},
		{ErrCodeLLMRequestFailed, "AI"},
		{ErrCodeMissingAPIKey, "CONFIG"},
		{ErrCodeValidationFailed, "VALIDATION"},
		{ErrCodeIntentUnmatched, "VALIDATION"},
		{ErrCodeSymbolNotFound, "LOOKUP"},
		{ErrCodePipelinePanicked, "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}

func TestConstructorsSetRetryability(t *testing.T) {
	assert.True(t, NewProviderUnreachableError("quotes", fmt.Errorf("refused")).Retryable)
	assert.True(t, NewRateLimitedError("quotes", "status 429").Retryable)
	assert.True(t, NewProviderTimeoutError("quotes").Retryable)
	assert.False(t, NewSymbolNotFoundError("XQZ").Retryable)
	assert.False(t, NewPairNotFoundError("AUD", "CAD").Retryable)
	assert.False(t, NewValidationFailedError("prompt is required").Retryable)
}

func TestStandardError_Error(t *testing.T) {
	err := NewPairNotFoundError("AUD", "CAD")
	assert.Equal(t, "StandardError[PAIR_NOT_FOUND]: Currency pair not present in rate table", err.Error())
}
