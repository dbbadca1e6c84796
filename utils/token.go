package utils

import (
	"math/rand"
	"time"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken produces a short alphanumeric code for the
// password-reset flow. Reset codes are single-use and cleared once
// consumed, so this does not need to be a long-lived secret.
func GenerateRandomToken(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	token := make([]byte, length)
	for i := range token {
		token[i] = tokenCharset[rng.Intn(len(tokenCharset))]
	}
	return string(token)
}
