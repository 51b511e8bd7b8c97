package crypto

import (
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"ftracker/internal/domain"
)

// fingerprintSize is the digest length in bytes (20 hex chars).
const fingerprintSize = 10

// Fingerprint returns a short hex fingerprint of p.
func Fingerprint(p domain.Package) string {
	h, err := blake2b.New(fingerprintSize, nil)
	if err != nil {
		// Only reachable with an invalid size constant.
		panic(err)
	}
	h.Write(canonical(p))
	return hex.EncodeToString(h.Sum(nil))
}

// canonical encodes p as "len(CODE):CODE|v1|v2|...". The length prefix keeps
// a '|' inside the code from colliding with the value separator.
func canonical(p domain.Package) []byte {
	b := make([]byte, 0, 4+len(p.Code)+8*len(p.Values))
	b = strconv.AppendInt(b, int64(len(p.Code)), 10)
	b = append(b, ':')
	b = append(b, string(p.Code)...)
	for _, v := range p.Values {
		b = append(b, '|')
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return b
}
