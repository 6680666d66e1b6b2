package core

import (
	"testing"

	"github.com/google/uuid"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

func TestNewRunIDIsUUID(t *testing.T) {
	id := NewRunID()
	if _, err := uuid.Parse(id.String()); err != nil {
		t.Errorf("Expected run ID %q to be a UUID: %v", id, err)
	}
}

func TestColumnNotFoundIsNotFound(t *testing.T) {
	err := NewColumnNotFoundError("Cabin")
	if !IsNotFoundError(err) {
		t.Errorf("Expected %v to match ErrNotFound", err)
	}
}
