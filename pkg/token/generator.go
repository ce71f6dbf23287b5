// Package token provides token identifier generation.
package token

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/oklog/ulid/v2"
)

// DefaultSaltLength is the number of random bytes mixed into each digest.
const DefaultSaltLength = 16

// Length is the length of a generated token.
const Length = md5.Size * 2

// Generate generates a new opaque token identifier.
func Generate() (string, error) {
	return GenerateFrom(rand.Reader)
}

// GenerateFrom generates a token drawing all randomness from entropy.
func GenerateFrom(entropy io.Reader) (string, error) {
	id, err := ulid.New(ulid.Now(), entropy)
	if err != nil {
		return "", err
	}
	salt, err := readBytes(entropy, DefaultSaltLength)
	if err != nil {
		return "", err
	}

	h := md5.New()
	h.Write(id[:])
	h.Write(salt)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// readBytes reads length bytes from entropy.
func readBytes(entropy io.Reader, length int) ([]byte, error) {
	bytes := make([]byte, length)
	if _, err := io.ReadFull(entropy, bytes); err != nil {
		return nil, err
	}
	return bytes, nil
}
