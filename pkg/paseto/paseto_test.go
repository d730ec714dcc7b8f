package paseto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Absensi-QR/models"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestMaker_RoundTrip(t *testing.T) {
	maker, err := NewMaker(testKey)
	require.NoError(t, err)

	token, err := maker.GenerateToken(models.Claims{EmployeeID: "EMP-001", Name: "Budi Santoso", Role: models.RoleEmployee}, time.Hour)
	require.NoError(t, err)
	assert.Contains(t, token, "v2.local.")

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", claims.EmployeeID)
	assert.Equal(t, "Budi Santoso", claims.Name)
	assert.False(t, claims.IsAdmin())
}

func TestMaker_Rejects(t *testing.T) {
	maker, err := NewMaker(testKey)
	require.NoError(t, err)

	expired, err := maker.GenerateToken(models.Claims{EmployeeID: "EMP-001", Role: models.RoleAdmin}, -time.Minute)
	require.NoError(t, err)
	_, err = maker.ValidateToken(expired)
	assert.Error(t, err)

	other, err := NewMaker([]byte("fedcba9876543210fedcba9876543210"))
	require.NoError(t, err)
	foreign, err := other.GenerateToken(models.Claims{EmployeeID: "EMP-001", Role: models.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	_, err = maker.ValidateToken(foreign)
	assert.Error(t, err)

	_, err = maker.GenerateToken(models.Claims{EmployeeID: "EMP-001", Role: "root"}, time.Hour)
	assert.Error(t, err)

	_, err = NewMaker([]byte("short"))
	assert.Error(t, err)
}
