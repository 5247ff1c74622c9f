package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxStationNameLength bounds user-supplied station names.
const MaxStationNameLength = 128

// ValidateStationName checks a user-supplied station name before lookup.
//
// Existence is left to lookup; only malformed input is rejected:
//   - Not empty after trimming white space
//   - Valid UTF-8
//   - No control characters
//   - At most MaxStationNameLength characters
func ValidateStationName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return New(ErrCodeInvalidInput, "station name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "station name is not valid UTF-8")
	}

	if utf8.RuneCountInString(name) > MaxStationNameLength {
		return New(ErrCodeInvalidInput, "station name too long (max %d characters)", MaxStationNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "station name contains invalid control characters")
		}
	}

	return nil
}

// ValidateDataPath checks a network data file path given on the command line
// or in configuration.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml, .yml or .json
func ValidateDataPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "network path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "network path contains invalid characters")
		}
	}

	lower := strings.ToLower(path)
	for _, ext := range []string{".toml", ".yaml", ".yml", ".json"} {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported network file %q (want .toml, .yaml, .yml or .json)", path)
}
