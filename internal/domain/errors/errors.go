package errors

import (
	"net/http"

	"sentinel/internal/errors"
)

// Category groups errors by how callers are expected to react to them.
type Category string

const (
	// CategoryInputValidation is fatal and reported before any I/O.
	CategoryInputValidation Category = "input_validation"
	// CategoryCodec covers geohash encode/decode failures.
	CategoryCodec Category = "codec"
	// CategoryParse covers structural failures of a single event.
	CategoryParse Category = "parse"
	// CategoryDecryption is reported per event; the event is skipped.
	CategoryDecryption Category = "decryption"
	// CategoryDelivery is swallowed at the boundary.
	CategoryDelivery Category = "delivery"
	// CategoryStorage covers the optional location history database.
	CategoryStorage Category = "storage"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Category() Category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	category  Category
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(category Category, errorCode, message, details string) *BaseError {
	return &BaseError{
		category:  category,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches on the error code so that copies made by WithDetails still
// compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Category returns the error category
func (e *BaseError) Category() Category {
	return e.category
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	switch e.category {
	case CategoryInputValidation:
		return http.StatusBadRequest
	case CategoryCodec, CategoryParse:
		return http.StatusUnprocessableEntity
	case CategoryDelivery:
		return http.StatusBadGateway
	case CategoryStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		category:  e.category,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// DatabaseExecuteError wraps a failed statement of the history database
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

// Unwrap returns the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Category() Category { return CategoryStorage }
func (e *DatabaseExecuteError) HTTPCode() int      { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string  { return "DATABASE_EXECUTE_ERROR" }
func (e *DatabaseExecuteError) Message() string    { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string    { return e.details }

// IsCategory reports whether err carries an AppError of the given category.
func IsCategory(err error, category Category) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.Category() == category
}

// Predefined error types
var (
	// Input validation
	ErrInputValidation = NewBaseError(
		CategoryInputValidation,
		"INPUT_VALIDATION",
		"invalid input",
		"",
	)

	ErrInvalidPrecision = NewBaseError(
		CategoryInputValidation,
		"INVALID_PRECISION",
		"geohash precision must be between 1 and 12",
		"",
	)

	ErrMalformedDuration = NewBaseError(
		CategoryInputValidation,
		"MALFORMED_DURATION",
		"invalid duration format (use e.g. 30s, 5m, 1h)",
		"",
	)

	ErrMalformedIdentity = NewBaseError(
		CategoryInputValidation,
		"MALFORMED_IDENTITY",
		"malformed identity",
		"",
	)

	ErrInvalidRecipient = NewBaseError(
		CategoryInputValidation,
		"INVALID_RECIPIENT",
		"recipient is not a well-formed public key",
		"",
	)

	// Codec
	ErrMalformedGeohash = NewBaseError(
		CategoryCodec,
		"MALFORMED_GEOHASH",
		"malformed geohash",
		"",
	)

	// Structural parse failures
	ErrWrongKind = NewBaseError(
		CategoryParse,
		"WRONG_KIND",
		"unexpected event kind",
		"",
	)

	ErrMissingTag = NewBaseError(
		CategoryParse,
		"MISSING_TAG",
		"missing tag",
		"",
	)

	ErrMalformedPayload = NewBaseError(
		CategoryParse,
		"MALFORMED_PAYLOAD",
		"malformed location payload",
		"",
	)

	ErrWrongAuthor = NewBaseError(
		CategoryParse,
		"WRONG_AUTHOR",
		"event is not signed by the requested author",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		CategoryParse,
		"INVALID_SIGNATURE",
		"event signature does not verify",
		"",
	)

	// Decryption
	ErrDecryptionFailed = NewBaseError(
		CategoryDecryption,
		"DECRYPTION_FAILED",
		"failed to decrypt event",
		"",
	)

	// Delivery
	ErrDeliveryFailed = NewBaseError(
		CategoryDelivery,
		"DELIVERY_FAILED",
		"alert delivery failed",
		"",
	)

	ErrPublishFailed = NewBaseError(
		CategoryDelivery,
		"PUBLISH_FAILED",
		"no relay accepted the event",
		"",
	)

	// Storage
	ErrHistoryDisabled = NewBaseError(
		CategoryStorage,
		"HISTORY_DISABLED",
		"location history is not configured",
		"",
	)
)
