package usecase

import (
	"net/mail"
	"strings"
	"unicode"
)

// ValidEmail reports whether the address is well-formed. The HTTP layer
// runs the same check through binding tags; this guards non-HTTP callers.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}

// ValidPassword enforces the alphanumeric-only password policy.
func ValidPassword(password string) bool {
	if password == "" {
		return false
	}
	for _, r := range password {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
