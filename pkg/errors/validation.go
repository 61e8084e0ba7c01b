package errors

import (
	"regexp"
	"unicode"
)

// maxNameLength bounds variable and state names in network documents.
const maxNameLength = 256

// ValidateName validates a variable or state name from a network document.
//
// The rules are deliberately loose since benchmark networks use a mix of
// upper-case, CamelCase and numeric names:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 256 bytes
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidNetwork, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidNetwork, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNetwork, "name %q contains control characters", name)
		}
	}

	return nil
}

// resourceStemRegex matches embedded resource file stems.
var resourceStemRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_]*$`)

// ValidateResourceStem validates the file stem of an embedded resource.
// Stems are lowercase catalog names and never contain path components.
func ValidateResourceStem(stem string) error {
	if !resourceStemRegex.MatchString(stem) {
		return New(ErrCodeInvalidInput, "invalid resource name: %q", stem)
	}
	return nil
}
