package auth

import (
	"strings"
	"unicode"
)

// StrengthLevel buckets a password score.
type StrengthLevel string

const (
	StrengthNone   StrengthLevel = ""
	StrengthWeak   StrengthLevel = "weak"
	StrengthMedium StrengthLevel = "medium"
	StrengthStrong StrengthLevel = "strong"
)

// Strength is the result of EvaluatePasswordStrength.
type Strength struct {
	Score    int           `json:"score"`
	Level    StrengthLevel `json:"level"`
	Feedback string        `json:"feedback"`
}

// EvaluatePasswordStrength scores a password from 0 to 5: one point each for
// reaching 8 characters, reaching 12 characters, mixing cases, containing a
// digit, and containing a symbol. Scores up to 2 are weak, up to 4 medium.
func EvaluatePasswordStrength(password string) Strength {
	if password == "" {
		return Strength{}
	}

	var s Strength
	var missing []string
	length := len([]rune(password))

	if length >= MinPasswordLength {
		s.Score++
	}
	if length >= 12 {
		s.Score++
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if lower && upper {
		s.Score++
	} else {
		missing = append(missing, "lower and upper case letters")
	}
	if digit {
		s.Score++
	} else {
		missing = append(missing, "digits")
	}
	if symbol {
		s.Score++
	} else {
		missing = append(missing, "special characters")
	}

	switch {
	case s.Score <= 2:
		s.Level = StrengthWeak
	case s.Score <= 4:
		s.Level = StrengthMedium
	default:
		s.Level = StrengthStrong
	}

	switch {
	case length < MinPasswordLength:
		s.Feedback = "too short: at least 8 characters required"
	case s.Level == StrengthStrong:
		s.Feedback = "strong password"
	case len(missing) > 0:
		s.Feedback = "add " + strings.Join(missing, " and ")
	default:
		s.Feedback = "use a longer password"
	}
	return s
}
