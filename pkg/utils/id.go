package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateObjectName gera o nome único usado nos objetos enviados ao storage
func GenerateObjectName() (string, error) {
	return gonanoid.Generate(characters, 12)
}
