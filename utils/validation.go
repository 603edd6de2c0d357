// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows an optional + prefix followed by digits; local numbers may
	// start with 0 (e.g. 0901234567)
	regex := `^\+?\d{7,15}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
