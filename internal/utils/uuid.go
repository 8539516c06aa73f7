package utils

import "github.com/google/uuid"

// RunIDGenerator produces time-ordered ids that tag every log entry of a run.
type RunIDGenerator struct {
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random UUID if the clock based
// generator fails.
func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
