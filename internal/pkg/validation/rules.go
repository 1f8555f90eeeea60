// Package validation holds field-level rules applied to data that arrives
// outside gin's struct binding, such as bulk import payloads.
package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100

	// Plausible graduation year bounds
	GraduationYearMin = 1900
	GraduationYearMax = 2100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the (lowercased) address matches the email pattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ValidName reports whether a name field is present and within length bounds
func ValidName(name string) bool {
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}

// ValidGraduationYear reports whether a graduation year is unset or plausible
func ValidGraduationYear(year int) bool {
	if year == 0 {
		return true
	}
	return year >= GraduationYearMin && year <= GraduationYearMax
}
