package utils

import "github.com/google/uuid"

// GenerateID generates a unique ID for entities
func GenerateID() string {
	return uuid.NewString()
}
