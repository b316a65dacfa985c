package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds document names accepted by stores and the HTTP API.
const maxNameLength = 128

// nameRegex matches document names: a letter or digit followed by letters,
// digits, dots, dashes and underscores.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName validates a document name used as a storage key.
// Names become file names and database keys, so the rules are conservative:
//   - No empty names
//   - Maximum length of 128 characters
//   - No control characters, separators or path traversal sequences
//   - Must start with a letter or digit
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "document name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "document name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "document name contains invalid control characters")
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "document name cannot contain %q", "..")
	}

	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid document name: %q", name)
	}

	return nil
}
