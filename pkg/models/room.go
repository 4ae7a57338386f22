package models

import "time"

type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// Preference is one participant's submitted viewing constraints for a room.
// Zero values mean "not submitted": aggregation skips them and the DB stores
// them as NULL.
type Preference struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	Genre      string    `json:"genre,omitempty"`
	Language   string    `json:"language,omitempty"`
	MaxRuntime int       `json:"max_runtime,omitempty"`
	MinRating  float64   `json:"min_rating,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
