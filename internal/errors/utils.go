package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Wrap wraps an error with additional context, creating a RayError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *RayError {
	if err == nil {
		return nil
	}

	// Keep the inner error's location and suggestions on the wrapper
	var re *RayError
	if errors.As(err, &re) {
		return &RayError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       re,
			Context:     re.Context,
			FilePath:    re.FilePath,
			Suggestions: re.Suggestions,
			Recoverable: re.Recoverable,
		}
	}

	return &RayError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation || errType == ErrorTypeRead,
	}
}

// WrapFileSystem wraps a directory or write failure for path.
func WrapFileSystem(err error, code, message, path string) *RayError {
	re := Wrap(err, ErrorTypeFileSystem, code, message)
	if re != nil {
		re.FilePath = path
		re.Recoverable = false
	}
	return re
}

// WrapRead wraps a source read failure for path.
func WrapRead(err error, path string) *RayError {
	re := Wrap(err, ErrorTypeRead, ErrCodeReadFile, "failed to read source")
	if re != nil {
		re.FilePath = path
	}
	return re
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *RayError {
	re := Wrap(err, ErrorTypeConfig, code, message)
	if re != nil {
		re.Recoverable = false
	}
	return re
}

// FormatError formats an error for user display
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var re *RayError
	if errors.As(err, &re) {
		return re.Error()
	}

	return err.Error()
}

// FormatErrorWithSuggestions formats an error followed by its suggestions, one per line.
func FormatErrorWithSuggestions(err error) string {
	if err == nil {
		return ""
	}

	var re *RayError
	if !errors.As(err, &re) || len(re.Suggestions) == 0 {
		return FormatError(err)
	}

	var b strings.Builder
	b.WriteString(re.Error())
	b.WriteString("\n\nValid options:")
	for _, suggestion := range re.Suggestions {
		fmt.Fprintf(&b, "\n  • %s", suggestion)
	}
	return b.String()
}

// GetErrorContext extracts context information from a RayError
func GetErrorContext(err error) map[string]interface{} {
	var re *RayError
	if errors.As(err, &re) {
		context := make(map[string]interface{})
		for k, v := range re.Context {
			context[k] = v
		}
		if re.FilePath != "" {
			context["file"] = re.FilePath
		}
		context["type"] = string(re.Type)
		context["code"] = re.Code
		context["recoverable"] = re.Recoverable
		return context
	}

	return map[string]interface{}{
		"message": err.Error(),
		"type":    "unknown",
	}
}
