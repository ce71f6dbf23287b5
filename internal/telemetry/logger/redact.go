package logger

import (
	"log/slog"
	"strings"
)

// Sensitive key patterns whose values are masked.
var sensitiveKeyPatterns = []string{
	"token",
	"secret",
	"password",
	"credential",
}

// redactedValue is the placeholder for values too short to mask.
const redactedValue = "***REDACTED***"

// Number of characters kept at each end of a masked value.
const (
	maskKeepHead = 4
	maskKeepTail = 4
)

// redactSensitive masks string attributes stored under sensitive keys.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		if strVal := a.Value.String(); strVal != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, maskValue(strVal))
		}
	}

	// Handle nested groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskValue partially masks a sensitive value.
// Format: first 4 chars + "..." + last 4 chars
func maskValue(value string) string {
	if len(value) <= 2*(maskKeepHead+maskKeepTail) {
		return redactedValue
	}
	return value[:maskKeepHead] + "..." + value[len(value)-maskKeepTail:]
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
