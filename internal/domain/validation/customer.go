// Package validation holds the customer field validators and input masks used by
// the checkout form and the relay.
package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Digits strips every non-digit rune.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidDocument checks a CPF: 11 digits, not all identical, both mod-11 check
// digits matching.
func ValidDocument(document string) bool {
	d := Digits(document)
	if len(d) != 11 {
		return false
	}
	if strings.Count(d, d[:1]) == len(d) {
		return false
	}

	return cpfCheckDigit(d[:9], 10) == int(d[9]-'0') &&
		cpfCheckDigit(d[:10], 11) == int(d[10]-'0')
}

// cpfCheckDigit weights digits from firstWeight down to 2; a remainder of 10 or
// 11 maps to 0.
func cpfCheckDigit(digits string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (firstWeight - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 || rem == 11 {
		return 0
	}
	return rem
}

// ValidPhone accepts 10 (landline) or 11 (mobile) digits including the area code.
func ValidPhone(phone string) bool {
	n := len(Digits(phone))
	return n == 10 || n == 11
}

func ValidFullName(name string) bool {
	return len(strings.Fields(name)) >= 2
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
