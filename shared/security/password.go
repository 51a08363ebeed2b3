package security

import (
	"errors"

	"github.com/matthewhartstonge/argon2"
)

// maxPasswordLength bounds the work a single hash request can cause.
const maxPasswordLength = 1024

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password exceeds maximum length")
)

// HashPassword returns an encoded argon2id hash with a random salt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// A malformed hash is returned as an error, a mismatch as false.
func VerifyPassword(password, encodedHash string) (bool, error) {
	if len(password) > maxPasswordLength {
		return false, nil
	}

	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
