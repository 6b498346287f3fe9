package core

import (
	"testing"
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

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Errorf("Expected distinct run IDs, got %s twice", a)
	}
	if ID(a).IsEmpty() {
		t.Error("Expected non-empty run ID")
	}
}
