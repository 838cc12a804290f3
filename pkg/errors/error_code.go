package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeMissingParameter     ErrorCode = 102
	ErrCodeInvalidType          ErrorCode = 103
	ErrCodeInvalidNodeKind      ErrorCode = 104
	ErrCodeInvalidComparison    ErrorCode = 105
	ErrCodeInvalidTimeframe     ErrorCode = 106

	// Board errors (200-299)
	ErrCodeNodeNotFound   ErrorCode = 200
	ErrCodeEdgeNotFound   ErrorCode = 201
	ErrCodeDuplicateEntry ErrorCode = 202

	// Codec errors (300-399)
	ErrCodeEncodeFailed     ErrorCode = 300
	ErrCodeDecodeFailed     ErrorCode = 301
	ErrCodeFormatMismatch   ErrorCode = 302
	ErrCodeSchemaGeneration ErrorCode = 303

	// Storage errors (400-499)
	ErrCodeStorageUnavailable ErrorCode = 400
	ErrCodeStorageSaveFailed  ErrorCode = 401
	ErrCodeStorageLoadFailed  ErrorCode = 402
	ErrCodeStorageClearFailed ErrorCode = 403

	// History errors (500-599)
	ErrCodeHistoryFetchFailed ErrorCode = 500
	ErrCodeHistoryParseFailed ErrorCode = 501
	ErrCodeInvalidProvider    ErrorCode = 502
)
