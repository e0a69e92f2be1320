package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenKeyLen is the length of an opaque token key on the wire:
// 20 random bytes, hex-encoded.
const TokenKeyLen = 40

// GenerateTokenKey produces a new opaque token key from the OS CSPRNG.
//
// The key is 20 random bytes encoded as a 40-character lowercase hex
// string. Returns an error only if the random source fails.
func GenerateTokenKey() (string, error) {
	raw := make([]byte, TokenKeyLen/2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating token key: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
