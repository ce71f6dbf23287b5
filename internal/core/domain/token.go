// Package domain defines the core domain models for tokenadm.
package domain

import (
	"math"
	"strings"
	"time"
)

// Expiry constants.
const (
	// MaxSecondsTimestamp is the largest value read as an epoch in seconds.
	// Anything above it is a millisecond timestamp written by older clients.
	MaxSecondsTimestamp int64 = 9_999_999_999

	// SecondsPerDay is the length of one validity day.
	SecondsPerDay int64 = 24 * 60 * 60

	// DateLayout is the layout used to display expiration dates.
	DateLayout = "2006-01-02 15:04:05"

	// MillisecondsNote is appended to dates read from millisecond timestamps.
	MillisecondsNote = " (timestamp in ms)"
)

// Masking constants.
const (
	maskHead      = 16
	maskTail      = 8
	maskShortHead = 4
)

// Token is a single record of the token table.
// The token string itself is the table key and is not part of the record.
type Token struct {
	// Expire is the expiration epoch, in seconds or legacy milliseconds.
	Expire int64 `json:"expire"`

	// NameClient is the display name of the owning client.
	NameClient string `json:"nameClient"`
}

// NewToken creates a record expiring days after now.
func NewToken(nameClient string, days int64, now time.Time) *Token {
	return &Token{
		Expire:     ExpireAfter(now, days),
		NameClient: nameClient,
	}
}

// IsExpired reports whether the record is expired at now.
func (t *Token) IsExpired(now time.Time) bool {
	return IsExpired(t.Expire, now)
}

// Extend adds days*SecondsPerDay to the stored value as is.
func (t *Token) Extend(days int64) {
	t.Expire += days * SecondsPerDay
}

// ExpireAfter returns the epoch (seconds) that lies days after now.
func ExpireAfter(now time.Time, days int64) int64 {
	return now.Unix() + days*SecondsPerDay
}

// MaxDaysAfter returns the largest day count that can be added to base
// without overflowing an int64 epoch.
func MaxDaysAfter(base int64) int64 {
	if base < 0 {
		base = 0
	}
	return (math.MaxInt64 - base) / SecondsPerDay
}

// IsMilliseconds reports whether an expire value is a millisecond timestamp.
func IsMilliseconds(expire int64) bool {
	return expire > MaxSecondsTimestamp
}

// NormalizeSeconds returns expire scaled to seconds.
func NormalizeSeconds(expire int64) int64 {
	if IsMilliseconds(expire) {
		return expire / 1000
	}
	return expire
}

// IsExpired reports whether expire lies strictly before now.
func IsExpired(expire int64, now time.Time) bool {
	return NormalizeSeconds(expire) < now.Unix()
}

// FormatDate renders an expire value in local time.
// Millisecond values are annotated with MillisecondsNote.
func FormatDate(expire int64) string {
	s := time.Unix(NormalizeSeconds(expire), 0).Format(DateLayout)
	if IsMilliseconds(expire) {
		return s + MillisecondsNote
	}
	return s
}

// MaskToken hides the middle of a token for on-screen listings.
// Example: 5f4dcc3b5aa765d6...1d8327de
func MaskToken(token string) string {
	if len(token) > maskHead+maskTail {
		return token[:maskHead] + "..." + token[len(token)-maskTail:]
	}
	if len(token) > maskShortHead {
		return token[:maskShortHead] + "..."
	}
	return strings.Repeat("*", len(token))
}
