package model

// Item represents a tracked physical item. LocationID is a weak reference:
// it may point at a location that has since been deleted, in which case the
// item simply remembers where it used to be. Timestamps are milliseconds
// since epoch.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Photo       string `json:"photo,omitempty"`
	LocationID  string `json:"location_id,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}
