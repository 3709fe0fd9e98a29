// Package validate holds the pure input validation rules shared by the
// repositories.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"findmystuff/internal/model"
)

// MaxNameLength is the maximum length of an item or location name, in runes,
// after trimming.
const MaxNameLength = 100

// MaxQueryLength is the maximum length of a search query.
const MaxQueryLength = 200

// MaxImageMB is the maximum size of an image before compression.
const MaxImageMB = 10

// ItemName checks that an item name is non-empty after trimming and within
// the length limit.
func ItemName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &model.ValidationError{Message: "Item name is required"}
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return &model.ValidationError{Message: "Item name must be less than 100 characters"}
	}
	return nil
}

// LocationName applies the same rules as ItemName for location names.
func LocationName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &model.ValidationError{Message: "Location name is required"}
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return &model.ValidationError{Message: "Location name must be less than 100 characters"}
	}
	return nil
}

// SearchQuery rejects unreasonably long search input.
func SearchQuery(query string) error {
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return &model.ValidationError{Message: "Search query too long"}
	}
	return nil
}

// ImageSize checks an image payload size against the pre-compression cap.
func ImageSize(sizeBytes int64) error {
	if sizeBytes > MaxImageMB*1024*1024 {
		return &model.ValidationError{Message: fmt.Sprintf("Image must be less than %dMB", MaxImageMB)}
	}
	return nil
}
