// Package validation checks user-supplied paths, URLs and websocket origins
// before the CLI or gallery server acts on them.
package validation

import (
	"fmt"
	"net/url"
	"unicode"
)

// ValidatePath rejects paths that cannot name a local file: empty paths and
// paths containing NUL or other control characters. Parent segments and
// shell punctuation are allowed; paths are never passed to a shell.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("path contains control character %q", r)
		}
	}

	return nil
}

// ValidateOrigin validates WebSocket origin for CSRF protection
func ValidateOrigin(origin string, allowedOrigins []string) error {
	if origin == "" {
		return fmt.Errorf("origin header is required")
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin format: %w", err)
	}

	if originURL.Scheme != "http" && originURL.Scheme != "https" {
		return fmt.Errorf("invalid origin scheme '%s': only http and https are allowed", originURL.Scheme)
	}

	for _, allowed := range allowedOrigins {
		if origin == allowed || originURL.Host == allowed {
			return nil
		}
	}

	return fmt.Errorf("origin '%s' is not in allowed origins list", origin)
}
