package model

// Location represents a named storage place. Names are unique
// (case-sensitive, after trimming) across all locations.
type Location struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Photo     string `json:"photo,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
