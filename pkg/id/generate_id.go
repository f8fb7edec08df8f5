package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a public identifier of exactly 32 lowercase hex
// characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
