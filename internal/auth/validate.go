package auth

import (
	"regexp"
	"unicode"
)

// Signup forms accept a password once its strength score reaches this many of
// the five requirements.
const MinPasswordScore = 3

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address has a plausible email shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PasswordScore counts how many strength requirements the password meets:
// minimum length of eight, an uppercase letter, a lowercase letter, a digit,
// and a character outside those classes.
func PasswordScore(password string) int {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	score := 0
	if len(password) >= 8 {
		score++
	}
	for _, met := range []bool{hasUpper, hasLower, hasNumber, hasSpecial} {
		if met {
			score++
		}
	}
	return score
}
