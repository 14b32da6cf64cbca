package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// Prefix for solve run IDs.
	Prefix = "cp"
	// IDLength is the number of hex characters after the prefix.
	IDLength = 4
)

// Generate creates a new unique ID in the format "cp-xxxx".
func Generate() (string, error) {
	return GenerateWithPrefix(Prefix)
}

// MustGenerate creates a new unique ID, panicking on error.
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a new unique ID with a custom prefix.
func GenerateWithPrefix(prefix string) (string, error) {
	bytes := make([]byte, IDLength/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes)), nil
}

// MustGenerateWithPrefix creates a new unique ID with a custom prefix, panicking on error.
func MustGenerateWithPrefix(prefix string) string {
	id, err := GenerateWithPrefix(prefix)
	if err != nil {
		panic(err)
	}
	return id
}
