// Package errors provides standardized error handling for the finance agent.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeProviderUnreachable ErrorCode = "PROVIDER_UNREACHABLE"
	ErrCodeProviderTimeout     ErrorCode = "PROVIDER_TIMEOUT"
	ErrCodeMalformedResponse   ErrorCode = "MALFORMED_RESPONSE"
	ErrCodeRateLimited         ErrorCode = "RATE_LIMITED"
	ErrCodeMissingAPIKey       ErrorCode = "MISSING_API_KEY"

	ErrCodeSymbolNotFound ErrorCode = "SYMBOL_NOT_FOUND"
	ErrCodePairNotFound   ErrorCode = "PAIR_NOT_FOUND"

	ErrCodeLLMTimeout       ErrorCode = "LLM_TIMEOUT"
	ErrCodeLLMRequestFailed ErrorCode = "LLM_REQUEST_FAILED"
	ErrCodeLLMEmptyResponse ErrorCode = "LLM_EMPTY_RESPONSE"
	ErrCodeIntentUnmatched  ErrorCode = "INTENT_UNMATCHED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodePipelinePanicked ErrorCode = "PIPELINE_PANICKED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewProviderUnreachableError creates a retryable transport error.
func NewProviderUnreachableError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderUnreachable,
		Message:   fmt.Sprintf("Provider '%s' unreachable", provider),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderTimeoutError creates a retryable timeout error.
func NewProviderTimeoutError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderTimeout,
		Message:   fmt.Sprintf("Provider '%s' timeout", provider),
		Details:   "API call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedResponseError creates a non-retryable decode error.
func NewMalformedResponseError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedResponse,
		Message:   fmt.Sprintf("Provider '%s' returned an unparseable response", provider),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError creates a retryable rate-limit error.
func NewRateLimitedError(provider, note string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   fmt.Sprintf("Provider '%s' rate limit reached", provider),
		Details:   note,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingAPIKeyError creates a non-retryable configuration error.
// A missing key is never fatal; callers use it to skip a degradation tier.
func NewMissingAPIKeyError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingAPIKey,
		Message:   fmt.Sprintf("No API key configured for '%s'", provider),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSymbolNotFoundError creates a non-retryable lookup error.
func NewSymbolNotFoundError(symbol string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSymbolNotFound,
		Message:   "Symbol not present in provider response",
		Details:   fmt.Sprintf("symbol: %s", symbol),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPairNotFoundError creates a non-retryable currency-pair error.
func NewPairNotFoundError(from, to string) *StandardError {
	return &StandardError{
		Code:      ErrCodePairNotFound,
		Message:   "Currency pair not present in rate table",
		Details:   fmt.Sprintf("pair: %s_%s", from, to),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable LLM timeout error.
func NewLLMTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "Generative model call timeout",
		Details:   "LLM call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMRequestFailedError creates a retryable LLM transport error.
func NewLLMRequestFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMRequestFailed,
		Message:   "Generative model API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMEmptyResponseError creates a non-retryable empty-candidate error.
func NewLLMEmptyResponseError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMEmptyResponse,
		Message:   "Generative model returned no candidates",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable request validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Retry Policy
// ==========================

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeProviderUnreachable,
		ErrCodeLLMRequestFailed:
		return 3 // Retryable technical errors

	case ErrCodeProviderTimeout,
		ErrCodeRateLimited:
		return 2 // Partial retry for timeouts and throttles

	case ErrCodeLLMTimeout:
		return 1

	default:
		return 0 // Business errors: no retry
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PROVIDER") || strings.Contains(codeStr, "RATE"):
		return "PROVIDER"
	case strings.Contains(codeStr, "LLM"):
		return "AI"
	case strings.Contains(codeStr, "KEY"):
		return "CONFIG"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "INTENT"):
		return "VALIDATION"
	case strings.Contains(codeStr, "NOT_FOUND"):
		return "LOOKUP"
	default:
		return "OTHER"
	}
}
