package validate

import (
	"errors"
	"strings"
	"testing"

	"findmystuff/internal/model"
)

func TestItemNameRejectsEmpty(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		err := ItemName(name)
		if err == nil {
			t.Errorf("expected error for %q", name)
			continue
		}
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("expected ValidationError for %q, got %T", name, err)
		}
	}
}

func TestItemNameLengthBoundary(t *testing.T) {
	if err := ItemName(strings.Repeat("a", 100)); err != nil {
		t.Errorf("expected 100-character name to be valid, got: %v", err)
	}
	if err := ItemName(strings.Repeat("a", 101)); err == nil {
		t.Error("expected 101-character name to be rejected")
	}
	// Trimming happens before the length check.
	if err := ItemName("  " + strings.Repeat("a", 100) + "  "); err != nil {
		t.Errorf("expected padded 100-character name to be valid, got: %v", err)
	}
}

func TestItemNameAcceptsInternalWhitespace(t *testing.T) {
	for _, name := range []string{"Canon Camera", "Mom's keys", "Box #3 (attic)"} {
		if err := ItemName(name); err != nil {
			t.Errorf("expected %q to be valid, got: %v", name, err)
		}
	}
}

func TestLocationNameMessages(t *testing.T) {
	err := LocationName("")
	if err == nil || err.Error() != "Location name is required" {
		t.Errorf("unexpected error: %v", err)
	}

	err = LocationName(strings.Repeat("x", 101))
	if err == nil || err.Error() != "Location name must be less than 100 characters" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSearchQuery(t *testing.T) {
	if err := SearchQuery(""); err != nil {
		t.Errorf("empty query should be valid, got: %v", err)
	}
	if err := SearchQuery(strings.Repeat("q", 201)); err == nil {
		t.Error("expected error for overlong query")
	}
}

func TestImageSize(t *testing.T) {
	if err := ImageSize(5 * 1024 * 1024); err != nil {
		t.Errorf("5MB should be valid, got: %v", err)
	}
	if err := ImageSize(11 * 1024 * 1024); err == nil {
		t.Error("expected error for 11MB image")
	}
}
