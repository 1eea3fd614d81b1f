package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+~`|}{[]:;?><,./-="

	// FullAlphabet is every character a password may contain, in selection order.
	FullAlphabet = lowercaseChars + uppercaseChars + numberChars + symbolChars
)

var (
	ErrInvalidLength        = errors.New("password length must be at least 1")
	ErrInvalidConfiguration = errors.New("invalid configuration: every character is excluded")
)

// RandomSource supplies uniformly distributed 32-bit values.
// Production code must use a cryptographically secure implementation.
type RandomSource interface {
	Uint32() (uint32, error)
}

// CryptoSource is a RandomSource backed by crypto/rand.
type CryptoSource struct{}

// Uint32 reads four bytes from crypto/rand.
func (CryptoSource) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("reading random bytes: %w", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Alphabet returns FullAlphabet with every character of excluded removed,
// preserving the order of the remaining characters.
func Alphabet(excluded string) string {
	if excluded == "" {
		return FullAlphabet
	}

	var sb strings.Builder
	sb.Grow(len(FullAlphabet))
	for i := 0; i < len(FullAlphabet); i++ {
		if !strings.ContainsRune(excluded, rune(FullAlphabet[i])) {
			sb.WriteByte(FullAlphabet[i])
		}
	}
	return sb.String()
}

// Generate builds a password of exactly length characters drawn from
// Alphabet(excluded). A nil src falls back to CryptoSource.
//
// Each position takes one 32-bit value reduced modulo the alphabet size.
// When the size does not divide 2^32 the first 2^32 mod len characters are
// favoured by one part in 2^32/len. This bias is accepted and kept.
func Generate(length int, excluded string, src RandomSource) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	pool := Alphabet(excluded)
	if len(pool) == 0 {
		return "", ErrInvalidConfiguration
	}

	if src == nil {
		src = CryptoSource{}
	}

	size := uint32(len(pool))
	result := make([]byte, length)
	for i := range result {
		v, err := src.Uint32()
		if err != nil {
			return "", fmt.Errorf("drawing character %d: %w", i, err)
		}
		result[i] = pool[v%size]
	}

	return string(result), nil
}
