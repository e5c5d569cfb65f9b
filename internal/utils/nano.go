package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	requestIDSize     = 16
	requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// RequestID generates a short correlation id for request logging.
func RequestID() string {
	return gonanoid.MustGenerate(requestIDAlphabet, requestIDSize)
}
