package utils

import (
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateRecoveryToken creates an opaque single-use password recovery token.
func GenerateRecoveryToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
