// Package emailcheck holds the pure validation rules for signup and
// contact emails: normalization, a minimal shape check, and a
// fixed-table typo suggestion for common provider domains.
package emailcheck

import (
	"fmt"
	"strings"
)

// typoDomains maps exact misspellings of common email providers to the
// canonical domain. Only exact matches trigger a suggestion.
var typoDomains = map[string]string{
	"gmial.com":    "gmail.com",
	"gmal.com":     "gmail.com",
	"gmaill.com":   "gmail.com",
	"gamil.com":    "gmail.com",
	"gmail.co":     "gmail.com",
	"hotmal.com":   "hotmail.com",
	"hotmial.com":  "hotmail.com",
	"hotmail.co":   "hotmail.com",
	"yaho.com":     "yahoo.com",
	"yahooo.com":   "yahoo.com",
	"yahoo.co":     "yahoo.com",
	"outlok.com":   "outlook.com",
	"outloook.com": "outlook.com",
	"outlook.co":   "outlook.com",
	"iclod.com":    "icloud.com",
	"icloud.co":    "icloud.com",
	"aol.co":       "aol.com",
	"aoll.com":     "aol.com",
}

// FormatError is returned when an address does not look like
// local@domain.tld at all.
type FormatError struct {
	Email string
}

func (e *FormatError) Error() string {
	return "invalid email format"
}

// TypoError is returned when the domain exactly matches a known
// misspelling. Suggestion is the full corrected address.
type TypoError struct {
	Email      string
	Suggestion string
}

func (e *TypoError) Error() string {
	return fmt.Sprintf("did you mean %s?", e.Suggestion)
}

// Normalize trims surrounding whitespace and lowercases the address.
// All storage and lookups go through this.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckFormat reports whether the address has a non-empty local part
// and a domain containing at least one dot. Deliberately loose: real
// deliverability is the provider's problem.
func CheckFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// Validate normalizes and checks the address. A malformed address
// yields *FormatError; a well-formed address whose domain is a known
// misspelling yields *TypoError carrying the corrected address. The
// format check short-circuits: a truly malformed address never gets a
// typo suggestion.
func Validate(email string) error {
	norm := Normalize(email)
	if !CheckFormat(norm) {
		return &FormatError{Email: norm}
	}
	at := strings.LastIndex(norm, "@")
	local, domain := norm[:at], norm[at+1:]
	if canonical, ok := typoDomains[domain]; ok {
		return &TypoError{Email: norm, Suggestion: local + "@" + canonical}
	}
	return nil
}
