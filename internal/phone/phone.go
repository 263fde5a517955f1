// Package phone normalizes customer phone numbers to E.164.
package phone

import (
	"errors"
	"strings"
)

// ErrEmpty is returned when the input contains no digits at all.
var ErrEmpty = errors.New("phone number is empty")

// Normalize canonicalizes raw into E.164. countryCode is the dialing
// prefix (e.g. "+1") applied to national 10-digit numbers.
func Normalize(raw, countryCode string) (string, error) {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}

	s := b.String()
	if s == "" || s == "+" {
		return "", ErrEmpty
	}

	if strings.HasPrefix(s, "+") {
		return s, nil
	}

	cc := strings.TrimPrefix(countryCode, "+")
	if cc == "" {
		cc = "1"
	}

	// National number without the country prefix.
	if len(s) == 10 {
		return "+" + cc + s, nil
	}

	// Already carries the country prefix, just missing the plus.
	if strings.HasPrefix(s, cc) && len(s) > 10 {
		return "+" + s, nil
	}

	return "+" + cc + s, nil
}
