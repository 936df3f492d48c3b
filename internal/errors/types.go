// Package errors provides the structured error taxonomy shared by the rayui
// commands: validation failures reported before any side effect, filesystem
// failures while writing scaffolds or exports, and read failures while
// loading component sources.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeFileSystem ErrorType = "filesystem"
	ErrorTypeRead       ErrorType = "read"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeInvalidCategory  = "ERR_INVALID_CATEGORY"
	ErrCodeInvalidFramework = "ERR_INVALID_FRAMEWORK"
	ErrCodeInvalidBlockName = "ERR_INVALID_BLOCK_NAME"
	ErrCodeInvalidPath      = "ERR_INVALID_PATH"
	ErrCodeInvalidFormat    = "ERR_INVALID_FORMAT"
	ErrCodeCreateDir        = "ERR_CREATE_DIR"
	ErrCodeWriteFile        = "ERR_WRITE_FILE"
	ErrCodeReadFile         = "ERR_READ_FILE"
	ErrCodeCatalogInvalid   = "ERR_CATALOG_INVALID"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeInternalError    = "ERR_INTERNAL"
)

// RayError is a structured error type with context.
type RayError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	FilePath    string
	Suggestions []string
	Recoverable bool
}

// Error implements the error interface.
func (e *RayError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *RayError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *RayError) Is(target error) bool {
	var t *RayError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *RayError) WithContext(key string, value interface{}) *RayError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithPath records the file the error refers to.
func (e *RayError) WithPath(filePath string) *RayError {
	e.FilePath = filePath

	return e
}

// WithSuggestions attaches the accepted values or next steps shown to the user.
func (e *RayError) WithSuggestions(suggestions ...string) *RayError {
	e.Suggestions = append(e.Suggestions, suggestions...)

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *RayError {
	return &RayError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewFileSystemError creates an error for a failed directory creation or file write.
func NewFileSystemError(code, message string, cause error) *RayError {
	return &RayError{
		Type:        ErrorTypeFileSystem,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewReadError creates an error for a missing or unreadable source file.
func NewReadError(code, message string, cause error) *RayError {
	return &RayError{
		Type:        ErrorTypeRead,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *RayError {
	return &RayError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *RayError {
	return &RayError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var re *RayError
	if errors.As(err, &re) {
		return re.Recoverable
	}

	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsFileSystem reports whether err is a filesystem error.
func IsFileSystem(err error) bool {
	return isType(err, ErrorTypeFileSystem)
}

// IsRead reports whether err is a read error.
func IsRead(err error) bool {
	return isType(err, ErrorTypeRead)
}

func isType(err error, t ErrorType) bool {
	var re *RayError
	if errors.As(err, &re) {
		return re.Type == t
	}

	return false
}

// Logger is the subset of the logging interface the handler needs.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// ErrorHandler routes errors to the logger with their structured fields.
type ErrorHandler struct {
	logger Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs err at a level matching its type.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var re *RayError
	if !errors.As(err, &re) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch re.Type {
	case ErrorTypeValidation, ErrorTypeRead:
		h.logger.Warn(ctx, err, "Recoverable error occurred",
			"type", re.Type,
			"code", re.Code,
			"file", re.FilePath)
	default:
		h.logger.Error(ctx, err, "Error occurred",
			"type", re.Type,
			"code", re.Code,
			"file", re.FilePath)
	}
}
