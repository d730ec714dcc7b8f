package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// KeySize is the length in bytes of keys made by GenerateKey. It fits both
// PASETO_SECRET and QR_SECRET_KEY.
const KeySize = 32

// GenerateKey returns KeySize random bytes, base64 URL encoded with padding.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(key), nil
}
