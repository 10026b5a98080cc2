package account

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// Validation failure messages. These are shown to the user verbatim, so
// they read as sentences rather than Go error strings.
var (
	errFieldsMissing   = errors.New("Please fill in all fields.")
	errUsernameLength  = errors.New("Username must be between 3 and 30 characters.")
	errUsernameCharset = errors.New("Username contains invalid characters. Use only letters, numbers, dashes, underscores, and periods.")
	errUsernameEdges   = errors.New("Username must start and end with a letter or number.")
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// validateRegistration applies the registration rules in order; the first
// failure wins, so a too-short username with bad characters reports the
// length error. No panel call happens until every rule passes.
func validateRegistration(in RegistrationInput) error {
	if in.FirstName == "" || in.LastName == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return errFieldsMissing
	}
	if n := utf8.RuneCountInString(in.Username); n < 3 || n > 30 {
		return errUsernameLength
	}
	if !usernameRe.MatchString(in.Username) {
		return errUsernameCharset
	}
	if !isAlphanumeric(in.Username[0]) || !isAlphanumeric(in.Username[len(in.Username)-1]) {
		return errUsernameEdges
	}
	return nil
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
