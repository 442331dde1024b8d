package entity

import "time"

// LikeTarget names the kind of entity a like points at. Exactly one of the
// target columns is set per row; the schema enforces this with a CHECK
// constraint and a partial unique index per kind.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like is a relation record: its existence means "liked".
type Like struct {
	ID        string
	UserID    string
	VideoID   string // set iff target is a video
	CommentID string // set iff target is a comment
	TweetID   string // set iff target is a tweet
	CreatedAt time.Time
}

// ToggleResult reports the state after a toggle along with a fresh count of
// relation records for the target.
type ToggleResult struct {
	Active     bool   `json:"active"`
	TotalCount int64  `json:"total_count"`
	TargetID   string `json:"target_id"`
}
