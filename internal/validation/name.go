package validation

import (
	"fmt"
	"unicode/utf8"
)

// MaxNameLen is the maximum length for character and party names.
const MaxNameLen = 80

// ValidateName checks a display name for characters and parties.
// Names are free-form but must be non-empty and fit on a sheet header.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}
