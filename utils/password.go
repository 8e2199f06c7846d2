package utils

import (
	"errors"

	"github.com/matthewhartstonge/argon2"
)

var ErrNoPasswordHash = errors.New("no password hash configured")

// HashPassword returns an argon2id encoded hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	if encodedHash == "" {
		return false, ErrNoPasswordHash
	}
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
