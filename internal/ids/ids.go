// Package ids generates and validates the 24-character hex entity ids used
// across users, trips and notes.
package ids

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"time"
)

// New returns a fresh 24-character lowercase hex id: a 4-byte unix
// timestamp followed by 8 random bytes.
func New() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := io.ReadFull(rand.Reader, raw[4:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic("ids: read random: " + err.Error())
	}
	return hex.EncodeToString(raw[:])
}

// IsValid reports whether s is a well-formed id. Uppercase hex is rejected:
// ids are always emitted lowercase and a round-trip through New never
// produces uppercase digits.
func IsValid(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
