package model

import "time"

type Review struct {
	ID         int       `json:"id"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	UserID     int       `json:"user_id"`
	BookID     int       `json:"book_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
