package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL checks an absolute http(s) URL used in rendered pages (site
// base URL, Open Graph image). Quotes, angle brackets and whitespace are
// rejected so the value is safe inside attributes.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %q (only http/https allowed)", parsed.Scheme)
	}

	if strings.ContainsAny(rawURL, "\"'<>` \t\r\n\\") {
		return fmt.Errorf("URL contains characters not allowed in attributes: %q", rawURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a valid hostname")
	}

	return nil
}

// BaseURL validates rawURL and strips any trailing slash so paths can be
// appended with a leading "/".
func BaseURL(rawURL string) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}
	return strings.TrimRight(rawURL, "/"), nil
}
