package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		expectErr bool
	}{
		{"relative", "content", false},
		{"nested", "dist/exports", false},
		{"absolute", "/srv/rayui/content", false},
		{"dot segments", "content/./components/../markdown", false},
		{"parent", "../drafts", false},
		{"deep parent", "../../shared/content", false},
		{"parentheses and spaces", "/home/me/Projects (old)/content", false},
		{"apostrophe", "Ray's blocks/content", false},
		{"empty", "", true},
		{"nul byte", "content\x00/etc", true},
		{"newline", "content\nexports", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		expectErr bool
	}{
		{"https", "https://rayui.so", false},
		{"with path", "https://rayui.so/opengraph-image.png", false},
		{"localhost port", "http://localhost:3000", false},
		{"ftp scheme", "ftp://rayui.so", true},
		{"javascript", "javascript:alert(1)", true},
		{"no host", "https://", true},
		{"quote", `https://rayui.so/"onload`, true},
		{"space", "https://rayui.so/a b", true},
		{"relative", "/blocks", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	got, err := BaseURL("https://rayui.so/")
	require.NoError(t, err)
	assert.Equal(t, "https://rayui.so", got)

	_, err = BaseURL("rayui.so")
	assert.Error(t, err)
}

func TestValidateOrigin(t *testing.T) {
	allowed := []string{"localhost:3000", "https://rayui.so"}

	assert.NoError(t, ValidateOrigin("http://localhost:3000", allowed))
	assert.NoError(t, ValidateOrigin("https://rayui.so", allowed))
	assert.Error(t, ValidateOrigin("", allowed))
	assert.Error(t, ValidateOrigin("http://evil.example", allowed))
	assert.Error(t, ValidateOrigin("file://localhost:3000", allowed))
}
