package validators

import (
	"strings"
	"unicode"
)

// NormalizeEmail trims and lower-cases an address so uniqueness holds
// regardless of how it was typed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone keeps digits and a leading plus sign.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeRoomNumber trims and upper-cases, so "or-101" and "OR-101" collide.
func NormalizeRoomNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}
