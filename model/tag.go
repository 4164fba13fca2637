package model

import "time"

// Tag names are unique; books and tags are joined through book_tags.
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
