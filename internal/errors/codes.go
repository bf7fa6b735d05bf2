// Package errors provides structured error handling for typeahead.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 4XX: Validation errors
//   - 5XX: Lookup and internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryLookup indicates search provider lookup failures.
	CategoryLookup Category = "LOOKUP"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Validation errors (400-499)
	ErrCodeInvalidInput = "ERR_401_INVALID_INPUT"
	ErrCodeDatasetEmpty = "ERR_402_DATASET_EMPTY"

	// Lookup and internal errors (500-599)
	ErrCodeLookupFailed   = "ERR_501_LOOKUP_FAILED"
	ErrCodeProviderClosed = "ERR_502_PROVIDER_CLOSED"
	ErrCodeInternal       = "ERR_503_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	switch code[4] {
	case '1':
		return CategoryConfig
	case '4':
		return CategoryValidation
	case '5':
		if code == ErrCodeLookupFailed {
			return CategoryLookup
		}
		return CategoryInternal
	default:
		return CategoryInternal
	}
}

// isRetryableCode checks if an error code represents a retryable error.
// Lookup failures are retryable: the caller can simply issue the query again.
func isRetryableCode(code string) bool {
	return code == ErrCodeLookupFailed
}
