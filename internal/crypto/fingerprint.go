package crypto

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex-encoded keyed BLAKE2b-256 digest of value.
// It lets generation events be grouped per client without storing addresses.
// The key must be at most 64 bytes.
func Fingerprint(key []byte, value string) (string, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return "", fmt.Errorf("creating blake2b hash: %w", err)
	}
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil)), nil
}
