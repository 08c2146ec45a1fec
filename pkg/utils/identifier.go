package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// NewID returns a prefixed, collision-resistant identifier such as
// "event-3f92c1...". 16 random bytes keep the collision odds negligible
// for any realistic table size.
func NewID(prefix string) string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GenerateSecureToken returns a random hex string of the given byte length,
// used for password-reset tokens.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
