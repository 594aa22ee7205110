package identifier

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

// Length is the number of hex characters in an entity identifier.
const Length = 24

var pattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// New returns a fresh 24-character hex identifier. The first four bytes
// encode the creation time so identifiers sort roughly by age, the
// remaining eight are random.
func New() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(raw[:])
}

// IsValid reports whether value is syntactically a valid identifier.
// Callers check this before any lookup so malformed ids never reach the
// store.
func IsValid(value string) bool {
	return len(value) == Length && pattern.MatchString(value)
}
