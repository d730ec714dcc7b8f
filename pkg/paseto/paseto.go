package paseto

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"Sistem-Absensi-QR/models"
)

const DefaultTokenTTL = 24 * time.Hour

// Maker mints and validates PASETO v2 local tokens with one symmetric key.
type Maker struct {
	v2  *paseto.V2
	key []byte
}

func NewMaker(symmetricKey []byte) (*Maker, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("paseto key must be exactly 32 bytes, got %d", len(symmetricKey))
	}
	return &Maker{v2: paseto.NewV2(), key: symmetricKey}, nil
}

func (m *Maker) GenerateToken(claims models.Claims, ttl time.Duration) (string, error) {
	if claims.EmployeeID == "" {
		return "", errors.New("employee id is required")
	}
	if claims.Role != models.RoleAdmin && claims.Role != models.RoleEmployee {
		return "", fmt.Errorf("unknown role %q", claims.Role)
	}

	now := time.Now()
	token := paseto.JSONToken{
		Subject:    claims.EmployeeID,
		IssuedAt:   now,
		Expiration: now.Add(ttl),
		NotBefore:  now,
	}
	token.Set("name", claims.Name)
	token.Set("role", claims.Role)

	return m.v2.Encrypt(m.key, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.v2.Decrypt(tokenString, m.key, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}
	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if token.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &models.Claims{
		EmployeeID: token.Subject,
		Name:       token.Get("name"),
		Role:       token.Get("role"),
	}, nil
}
