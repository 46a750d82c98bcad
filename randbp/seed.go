package randbp

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// cryptoReader is replaced in tests.
var cryptoReader = crand.Read

// GetSeed returns a seed for pseudo-random generator.
//
// It tries to use crypto/rand to read an int64,
// and falls back to the current time if that fails for whatever reason.
func GetSeed() int64 {
	var buf [8]byte
	if _, err := cryptoReader(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(buf[:]))
}
