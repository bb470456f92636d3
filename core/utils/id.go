package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID returns a 9-character opaque identifier for calendar records
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 9)
	if err != nil {
		return ""
	}
	return id
}
