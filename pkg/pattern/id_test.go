package pattern

import (
	"strings"
	"testing"
	"time"
)

func TestNewDocumentFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	name, err := NewDocumentFilename("Men's Dress Shirt", FitSlim, now)
	if err != nil {
		t.Fatalf("Failed to derive filename: %v", err)
	}
	if !strings.HasPrefix(name, "men's_dress_shirt_slim_pattern_20260314_092653_") {
		t.Errorf("Unexpected filename prefix: %s", name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("Filename should end in .pdf: %s", name)
	}
}

func TestDocumentFilenameCollisionResistance(t *testing.T) {
	now := time.Now()
	names := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		name, err := NewDocumentFilename("Casual Shirt", FitRegular, now)
		if err != nil {
			t.Fatalf("Failed to derive filename: %v", err)
		}
		if names[name] {
			t.Fatalf("Collision after %d iterations: %s", i, name)
		}
		names[name] = true
	}
}
