package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NormalizeSecurityAnswer lowercases and trims an answer so that casing and
// stray whitespace do not defeat recovery. Applied before hashing and before
// verification.
func NormalizeSecurityAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
