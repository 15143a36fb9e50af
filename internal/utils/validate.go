package utils

import "regexp"

// emailPattern mirrors the original service's loose format check:
// something, an @, something, a dot, something.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// IsEmailValid reports whether email passes the simple format check used at
// sign-up. It is intentionally permissive; uniqueness and deliverability are
// out of scope.
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}
