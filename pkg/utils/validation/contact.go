// pkg/utils/validation/contact.go
package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// \p{Zs} plus line/paragraph separators and BOM cover the Unicode spaces
	// browsers accept in a phone field.
	phonePattern = regexp.MustCompile(`^[+]?[\d\s\p{Zs}\x{2028}\x{2029}\x{FEFF}-]+$`)

	localPattern = regexp.MustCompile(`^[A-Za-z0-9_'+.-]+$`)
	labelPattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?$`)
	tldPattern   = regexp.MustCompile(`^[A-Za-z]{2,}$`)
)

// IsValidEmail accepts a bare address only; display-name forms such as
// "Jane <jane@example.com>" are rejected. The local part must be ASCII and
// the domain needs hostname labels and a top-level domain of two or more
// letters.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	if !validLocal(local) {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !labelPattern.MatchString(label) {
			return false
		}
	}
	return tldPattern.MatchString(labels[len(labels)-1])
}

func validLocal(local string) bool {
	if !localPattern.MatchString(local) {
		return false
	}
	return !strings.HasPrefix(local, ".") && !strings.HasSuffix(local, ".") && !strings.Contains(local, "..")
}

// IsValidPhone checks the character set only: optional leading '+', then
// digits, spaces and hyphens.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Length counts runes, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
