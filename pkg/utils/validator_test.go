package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_Messages(t *testing.T) {
	type payload struct {
		Start string `validate:"required,hhmm"`
		Kind  string `validate:"oneof=a b"`
	}

	errs := ValidateStruct(payload{Start: "9:00", Kind: "c"})
	require.Len(t, errs, 2)
	assert.Equal(t, "hhmm", errs[0].Tag)
	assert.Equal(t, "Field 'Start' must be a time of day as HH:MM.", errs[0].Msg)
	assert.Equal(t, "Field 'Kind' must be one of: a b.", errs[1].Msg)

	assert.Empty(t, ValidateStruct(payload{Start: "09:00", Kind: "a"}))
}

func TestHHMM(t *testing.T) {
	type clock struct {
		At string `validate:"hhmm"`
	}
	for _, ok := range []string{"00:00", "09:15", "23:59"} {
		assert.Empty(t, ValidateStruct(clock{At: ok}), ok)
	}
	for _, bad := range []string{"24:00", "12:60", "9:15", "09-15", ""} {
		assert.NotEmpty(t, ValidateStruct(clock{At: bad}), bad)
	}
}
