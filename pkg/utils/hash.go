package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns a short, stable SHA-256 digest of an email address so
// logs can correlate submissions without holding the address itself.
func Fingerprint(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:12]
}
