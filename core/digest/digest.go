// Package digest computes content digests for emitted documents.
// SHA-256 is the primary hash; BLAKE3 is carried alongside for fast
// comparison by downstream tooling.
package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Result contains both SHA-256 and BLAKE3 hashes for a byte sequence.
type Result struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Sum computes both digests of data.
func Sum(data []byte) Result {
	sha := sha256.Sum256(data)
	b3 := blake3.Sum256(data)
	return Result{
		SHA256: hex.EncodeToString(sha[:]),
		BLAKE3: hex.EncodeToString(b3[:]),
	}
}
