// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NormalizePhone strips formatting characters so numbers like
// "+7 (999) 123-45-67" compare and validate consistently.
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}
