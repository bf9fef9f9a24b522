package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	hashLen    = 32
	iterations = 100_000
)

func GenerateSalt() ([]byte, error) {
	b := make([]byte, saltLen)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func HashPassword(pw string, salt []byte) []byte {
	return pbkdf2.Key([]byte(pw), salt, iterations, hashLen, sha256.New)
}

// CheckPassword compares in constant time regardless of where they differ.
func CheckPassword(hash, salt []byte, pw string) bool {
	return hmac.Equal(hash, HashPassword(pw, salt))
}
