package entity

import "time"

// NotificationKind names what happened; currently only new-video fanout.
const NotificationVideoPublished = "video_published"

// Notification is an in-app notification row written by the notify worker
// when a subscribed channel publishes a video.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	ActorID   string    `json:"actor_id"`
	VideoID   string    `json:"video_id,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// VideoPublishedEvent is the message published to the video events queue
// when a video goes live.
type VideoPublishedEvent struct {
	VideoID   string    `json:"video_id"`
	ChannelID string    `json:"channel_id"`
	Title     string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// WatchHistoryEntry is the denormalized shape for a user's watch history.
type WatchHistoryEntry struct {
	Video     VideoWithOwner `json:"video"`
	WatchedAt time.Time      `json:"watched_at"`
}
