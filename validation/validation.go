// Package validation holds the input checks shared by the auth handlers.
package validation

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// ValidEmail reports whether the address matches the local@domain pattern
// with standard dot-segment rules.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPassword reports whether the password is 6-20 characters long and
// contains at least one digit, one lowercase and one uppercase letter.
func ValidPassword(password string) bool {
	// Limits are in characters, not bytes
	length := utf8.RuneCountInString(password)
	if length < 6 || length > 20 {
		return false
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	return hasDigit && hasLower && hasUpper
}

// ValidFullname reports whether the display name is at least 3 characters.
func ValidFullname(fullname string) bool {
	return utf8.RuneCountInString(fullname) >= 3
}
