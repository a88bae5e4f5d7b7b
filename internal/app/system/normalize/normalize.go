// Package normalize provides canonical forms for user-supplied identity
// fields. Every value that participates in a lookup or a uniqueness check
// goes through here before it touches the database.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Handle lowercases and trims a handle for case-insensitive comparison.
func Handle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DomainSuffix canonicalizes a college email-domain suffix: trimmed,
// lowercased, and always beginning with "@". An empty input stays empty.
func DomainSuffix(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "@") {
		s = "@" + s
	}
	return s
}

// EmailMatchesSuffix reports whether the email's domain ends with the given
// suffix, case-insensitively. An empty suffix matches everything.
func EmailMatchesSuffix(email, suffix string) bool {
	if suffix == "" {
		return true
	}
	return strings.HasSuffix(Email(email), DomainSuffix(suffix))
}

// LocalPart returns the part of an email before the "@", used to derive a
// default handle for new accounts.
func LocalPart(email string) string {
	email = Email(email)
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
