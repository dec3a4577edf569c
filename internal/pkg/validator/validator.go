package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxContentLength is measured in code points, not bytes.
const MaxContentLength = 1000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateContent rejects invalid message content before any I/O happens.
func (v *Validator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if utf8.RuneCountInString(content) > MaxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", MaxContentLength)
	}

	return nil
}
