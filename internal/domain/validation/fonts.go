package validation

import "strings"

const maxFamilyLength = 200

// ValidateFontFamily checks a family name used in a CSS font stack.
func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	if len(value) > maxFamilyLength {
		errs = append(errs, field+" is too long")
	}

	return errs
}

// ValidateCustomProperty checks that a host custom property name is usable in CSS.
func ValidateCustomProperty(field string, value string) []string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "--") || len(value) < 3 {
		return []string{field + " must be a CSS custom property like --name"}
	}
	if strings.ContainsAny(value, " \t\r\n;:{}()") {
		return []string{field + " must not contain whitespace or CSS punctuation"}
	}
	return nil
}
