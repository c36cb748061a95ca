package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID genera el identificador corto de una corrida del pipeline.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
