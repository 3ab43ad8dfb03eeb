package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera o identificador curto que agrupa as execuções de uma
// mesma varredura na trilha de auditoria.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
