package session

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const maxFullNameLength = 100

// Buyer holds sanitized contact fields. An empty string means the field
// has not been supplied (or was discarded during sanitization).
type Buyer struct {
	Email    string
	FullName string
}

// BuyerPatch carries optional field updates. Nil fields are absent and
// leave the existing value untouched.
type BuyerPatch struct {
	Email    *string
	FullName *string
}

func NewBuyer(email, fullName string) Buyer {
	return Buyer{
		Email:    SanitizeEmail(email),
		FullName: SanitizeFullName(fullName),
	}
}

// SanitizeEmail trims and lowercases the input and accepts it only if it
// has a local@domain.tld shape. Anything else is discarded rather than
// reported as an error.
func SanitizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return ""
	}
	return s
}

// SanitizeFullName trims the input and caps it at 100 characters.
// Empty-after-trim values are discarded.
func SanitizeFullName(s string) string {
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > maxFullNameLength {
		s = string(runes[:maxFullNameLength])
	}
	return s
}

// Merge applies sanitized patch fields one by one. Fields absent from the
// patch, and submitted values the sanitizer discards, preserve the
// existing value; there is no way to clear a field through a patch.
func (b Buyer) Merge(p BuyerPatch) Buyer {
	if p.Email != nil {
		if v := SanitizeEmail(*p.Email); v != "" {
			b.Email = v
		}
	}
	if p.FullName != nil {
		if v := SanitizeFullName(*p.FullName); v != "" {
			b.FullName = v
		}
	}
	return b
}

// IsComplete reports whether the buyer can complete a checkout.
func (b Buyer) IsComplete() bool {
	return b.Email != "" && b.FullName != ""
}
