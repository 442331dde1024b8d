package entity

import "time"

// User is both an account and a channel: videos, playlists and tweets hang
// off it, and subscriptions point at it.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	FullName  string
	AvatarURL string
	CoverURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary is the denormalized owner shape inlined into read responses
// instead of a raw foreign key.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// ChannelProfile is the public view of a user as a channel, including
// subscription counts and whether the requesting viewer is subscribed.
type ChannelProfile struct {
	UserSummary
	CoverURL        string `json:"cover_url"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalSubscribedTo int64 `json:"total_subscribed_to"`
	IsSubscribed    bool   `json:"is_subscribed"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, FullName: u.FullName, AvatarURL: u.AvatarURL}
}
