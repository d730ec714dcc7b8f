package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

func TestWith_KeepsCodeAndMessage(t *testing.T) {
	err := DuplicateScan.With("check-in already recorded today")

	assert.Equal(t, "check-in already recorded today", err.Error())
	assert.True(t, errors.Is(err, DuplicateScan))
	assert.False(t, errors.Is(err, OnLeave))

	def := Lookup(err)
	assert.Equal(t, "DUPLICATE_SCAN", def.Code)
	assert.Equal(t, http.StatusConflict, def.Status)
}

func TestLookup_WrappedDefinition(t *testing.T) {
	err := fmt.Errorf("mark attendance: %w", OnLeave.With("on approved leave (full_day)"))

	assert.True(t, errors.Is(err, OnLeave))
	assert.Equal(t, "ON_LEAVE", Lookup(err).Code)
}

func TestLookup_UnknownErrorKeepsMessage(t *testing.T) {
	def := Lookup(errors.New("connection refused"))

	assert.Equal(t, "INTERNAL_ERROR", def.Code)
	assert.Equal(t, "connection refused", def.Message)
	assert.Equal(t, http.StatusInternalServerError, def.Status)
}

func TestLookup_BackendDown(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network label", mongo.CommandError{Message: "connection refused", Labels: []string{"NetworkError"}}},
		{"wrapped timeout", fmt.Errorf("failed to find attendance history: %w", context.DeadlineExceeded)},
		{"server selection", topology.ServerSelectionError{Wrapped: errors.New("connection refused")}},
		{"client disconnected", mongo.ErrClientDisconnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Lookup(tt.err)
			assert.Equal(t, "BACKEND_UNAVAILABLE", def.Code)
			assert.Equal(t, http.StatusServiceUnavailable, def.Status)
			assert.Equal(t, tt.err.Error(), def.Message)
		})
	}
}
