package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewApplicationID returns the human-readable application identifier handed
// to applicants at intake, e.g. "IDC-1735186234567042". The three trailing
// random digits keep two intakes in the same millisecond from colliding on
// the unique index.
func NewApplicationID() string {
	var b [2]byte
	_, _ = rand.Read(b[:])
	n := (int(b[0])<<8 | int(b[1])) % 1000
	return fmt.Sprintf("IDC-%d%03d", time.Now().UnixMilli(), n)
}

// ConfirmationCode derives the shareable appointment confirmation code from
// an appointment's public id: "APT-" plus the last 8 characters, upper-cased.
func ConfirmationCode(appointmentID string) string {
	tail := appointmentID
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}
	return "APT-" + strings.ToUpper(tail)
}

// ConfirmationSuffix extracts the lower-cased id suffix from a confirmation
// code, for suffix lookup. Returns "" unless the code is "APT-" followed by
// exactly 8 hex characters; anything else would end up inside a LIKE pattern.
func ConfirmationSuffix(code string) string {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, "APT-") {
		return ""
	}
	suffix := strings.ToLower(strings.TrimPrefix(code, "APT-"))
	if len(suffix) != 8 {
		return ""
	}
	for _, ch := range suffix {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return ""
		}
	}
	return suffix
}
