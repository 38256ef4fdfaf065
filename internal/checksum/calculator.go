package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes a content digest.
// This abstraction allows for different digest algorithms.
type Calculator interface {
	// Sum returns the hex-encoded digest of content.
	Sum(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Sum computes the hex-encoded SHA-256 digest of content.
func (c SHA256) Sum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
