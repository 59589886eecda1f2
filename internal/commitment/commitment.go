// Package commitment implements the seed commit-reveal primitives: a room
// locks by publishing only the hash of a freshly generated secret, and the
// reveal later proves the secret matches that hash.
package commitment

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/wheelparty/chaoswheel/internal/commitment Generator

// ErrMismatch is returned when a secret does not hash to its commitment
var ErrMismatch = errors.New("secret does not match commitment")

// secretBytes is the secret length; 32 bytes = 256 bits
const secretBytes = 32

// Generator produces secret seeds
type Generator interface {
	// NewSecret returns a cryptographically strong random secret encoded
	// as lowercase hex
	NewSecret() (string, error)
}

// DefaultGenerator implements Generator using crypto/rand
type DefaultGenerator struct{}

// New creates a new DefaultGenerator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewSecret returns a fresh 256-bit random secret as hex
func (g *DefaultGenerator) NewSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash returns the commitment for a secret: the SHA-256 of its string
// encoding, as lowercase hex.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Verify checks that secret hashes to hash. A mismatch means the stored
// secret or the published commitment was altered after lock time.
func Verify(secret, hash string) error {
	want := Hash(secret)
	if subtle.ConstantTimeCompare([]byte(want), []byte(hash)) != 1 {
		return ErrMismatch
	}
	return nil
}
