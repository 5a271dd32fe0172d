package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// IsWellFormedID reports whether s parses as a generated identifier
func IsWellFormedID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
