package internal

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ExpirationFormat is the timestamp layout of the expiration field.
	ExpirationFormat = time.RFC3339
	// DisplayTimeFormat is used when showing times to the user.
	DisplayTimeFormat = "2006-01-02 15:04:05"
)

// FormatExpiration renders t the way it is stored in the credentials file.
func FormatExpiration(t time.Time) string {
	return t.UTC().Format(ExpirationFormat)
}

// ParseExpiration parses a stored expiration field.
func ParseExpiration(s string) (time.Time, error) {
	return time.Parse(ExpirationFormat, strings.TrimSpace(s))
}

// FormatDuration renders d as "1h 2m 3s", omitting zero components.
// Durations under one second render as "".
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	parts := make([]string, 0, 3)
	for _, c := range []struct {
		n    int64
		unit string
	}{
		{secs / 3600, "h"},
		{secs % 3600 / 60, "m"},
		{secs % 60, "s"},
	} {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", c.n, c.unit))
		}
	}
	return strings.Join(parts, " ")
}

// RemainingValidity reports how long the credentials stored under name stay
// valid after now. A missing, unparsable or past expiration yields false.
func RemainingValidity(store *CredentialStore, name string, now time.Time) (string, bool) {
	section, ok := store.Section(name)
	if !ok {
		return "", false
	}
	raw, ok := section[ExpirationField]
	if !ok {
		return "", false
	}
	exp, err := ParseExpiration(raw)
	if err != nil || exp.Before(now) {
		return "", false
	}
	return FormatDuration(exp.Sub(now)), true
}
