package entity

import "time"

// Video is owned by exactly one user. Unpublished videos are visible only
// to their owner.
type Video struct {
	ID           string
	OwnerID      string
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Duration     float64
	Views        int64
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VideoWithOwner is the denormalized read shape for listings and detail views.
type VideoWithOwner struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	VideoURL     string      `json:"video_url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Duration     float64     `json:"duration"`
	Views        int64       `json:"views"`
	IsPublished  bool        `json:"is_published"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Owner        UserSummary `json:"owner"`
}

// VideoPatch carries a partial update. Nil fields are untouched; a non-nil
// empty string still applies (clearing a description is a valid edit).
type VideoPatch struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
}

// ChannelStats is the aggregate dashboard view of a channel.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}
