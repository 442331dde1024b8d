package entity

import "time"

// Subscription is a relation record from a subscriber to a channel (both
// users). Self-subscription is forbidden; the schema backs this with a
// CHECK constraint.
type Subscription struct {
	ID           string
	SubscriberID string
	ChannelID    string
	CreatedAt    time.Time
}

// SubscriptionEdge is the denormalized shape for subscriber / subscribed-to
// listings: the user on the far side of the edge plus when it was created.
type SubscriptionEdge struct {
	User         UserSummary `json:"user"`
	Email        string      `json:"email"`
	SubscribedAt time.Time   `json:"subscribed_at"`
}
