package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	first, err := GenerateKey()
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, KeySize)

	second, err := GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
