package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrSaltGeneration = errors.New("salt generation failed")

// SaltBytes is the number of random bytes drawn for a new salt.
const SaltBytes = 16

// PasswordHasher provides interface for password operations
type PasswordHasher interface {
	Hash(password string) (hash, salt string, err error)
	Compare(hash, salt, password string) bool
}

type saltedHasher struct {
	saltBytes int
}

// NewSaltedHasher creates a password hasher that stores a hex SHA-256 digest
// of the password concatenated with a random base64 salt.
func NewSaltedHasher() PasswordHasher {
	return &saltedHasher{saltBytes: SaltBytes}
}

func (s *saltedHasher) Hash(password string) (string, string, error) {
	salt, err := generateSalt(s.saltBytes)
	if err != nil {
		return "", "", err
	}
	return digest(password, salt), salt, nil
}

func (s *saltedHasher) Compare(hash, salt, password string) bool {
	computed := digest(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

func generateSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaltGeneration, err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

func digest(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
