// Package validation holds the form-input rules shared by the CLI prompts.
// The rules mirror what the backend accepts, so obviously bad input is
// rejected before a network round trip.
package validation

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)
	documentRe = regexp.MustCompile(`^\d+$`)
)

// MinPasswordLength is the backend's minimum accepted password length.
const MinPasswordLength = 8

// Email reports whether s looks like a valid e-mail address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password checks the password policy. On failure it returns the
// user-facing message (the backend's messages are Spanish in-domain).
func Password(s string) (bool, string) {
	if len(s) < MinPasswordLength {
		return false, "La contraseña debe tener al menos 8 caracteres"
	}
	return true, ""
}

// Phone reports whether s is an acceptable phone number: at least 8
// characters of digits, spaces, dashes, parentheses, optionally prefixed
// with '+'.
func Phone(s string) bool {
	return len(s) >= 8 && phoneRe.MatchString(s)
}

// Document reports whether s is an acceptable identity-document number:
// digits only, at least 7 of them.
func Document(s string) bool {
	return len(s) >= 7 && documentRe.MatchString(s)
}

// Required reports whether s is non-blank after trimming whitespace.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}
