package entity

import "time"

// Comment belongs to exactly one video and is authored by exactly one user.
type Comment struct {
	ID        string
	VideoID   string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentWithOwner is the denormalized read shape for comment listings.
type CommentWithOwner struct {
	ID        string      `json:"id"`
	VideoID   string      `json:"video_id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Owner     UserSummary `json:"owner"`
}
