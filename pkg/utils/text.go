package utils

import "strings"

// NormalizeName is the canonical form of human-entered names used for
// storage and uniqueness checks.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
