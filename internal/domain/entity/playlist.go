package entity

import "time"

// Playlist is an owner-gated, ordered collection of video references.
type Playlist struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlaylistVideo is a short video shape inlined into playlist detail views.
type PlaylistVideo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	AddedAt      time.Time `json:"added_at"`
}

// PlaylistWithVideos is the denormalized playlist read shape.
type PlaylistWithVideos struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsPublic    bool            `json:"is_public"`
	VideoCount  int             `json:"video_count"`
	Videos      []PlaylistVideo `json:"videos"`
	Owner       UserSummary     `json:"owner"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PlaylistPatch carries a partial update; nil fields are untouched and a
// non-nil empty description clears it.
type PlaylistPatch struct {
	Name        *string
	Description *string
	IsPublic    *bool
}
