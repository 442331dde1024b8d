package entity

import "time"

// Tweet is a short text post owned by a user.
type Tweet struct {
	ID        string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TweetWithOwner is the denormalized read shape for tweet listings.
type TweetWithOwner struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Owner     UserSummary `json:"owner"`
}
