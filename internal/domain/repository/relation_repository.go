package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
)

// LikeRepository stores actor→target like edges.
//
// Toggle is the race-safe flip: delete-if-present, otherwise
// insert-on-conflict-do-nothing. A concurrent duplicate insert loses the
// conflict and is reported as active=true, matching the state the winner
// created.
type LikeRepository interface {
	Toggle(ctx context.Context, userID string, target entity.LikeTarget, targetID string) (active bool, err error)
	Count(ctx context.Context, target entity.LikeTarget, targetID string) (int64, error)

	// LikedVideos lists videos the user has liked, newest like first,
	// excluding unpublished targets.
	LikedVideos(ctx context.Context, userID string, p pagination.Params) ([]entity.VideoWithOwner, int64, error)
}

// SubscriptionRepository stores subscriber→channel edges.
type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (active bool, err error)
	CountForChannel(ctx context.Context, channelID string) (int64, error)
	Subscribers(ctx context.Context, channelID string, p pagination.Params) ([]entity.SubscriptionEdge, int64, error)
	SubscribedChannels(ctx context.Context, subscriberID string, p pagination.Params) ([]entity.SubscriptionEdge, int64, error)

	// SubscriberIDs returns every subscriber of a channel; used by the
	// notification fanout worker.
	SubscriberIDs(ctx context.Context, channelID string) ([]string, error)
}
