package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		in, first, last string
	}{
		{"Budi Santoso", "Budi", "Santoso"},
		{"Siti Nur Aisyah", "Siti Nur", "Aisyah"},
		{"Sukarno", "Sukarno", "Sukarno"},
		{"  ", "", ""},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}
