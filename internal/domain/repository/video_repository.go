package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
)

// VideoFilter narrows a video listing. Zero values mean "no filter".
type VideoFilter struct {
	// Query matches title/description (SQL fallback when search is not
	// delegated to Elasticsearch).
	Query string
	// OwnerID restricts the listing to one channel.
	OwnerID string
	// IncludeUnpublished lifts the is_published filter; only set when the
	// owner is browsing their own channel.
	IncludeUnpublished bool
	// SortBy is one of created_at, views, duration, title; SortDesc picks
	// the direction. Default is created_at descending.
	SortBy   string
	SortDesc bool
}

// VideoRepository defines the interface for video storage.
type VideoRepository interface {
	Create(ctx context.Context, v *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	GetWithOwner(ctx context.Context, id string) (*entity.VideoWithOwner, error)
	List(ctx context.Context, f VideoFilter, p pagination.Params) ([]entity.VideoWithOwner, int64, error)

	// Patch applies only non-nil fields.
	Patch(ctx context.Context, id string, patch entity.VideoPatch) error
	SetPublished(ctx context.Context, id string, published bool) error
	IncrementViews(ctx context.Context, id string) error

	// DeleteCascade removes the video together with its comments, its
	// likes, and the likes of its comments, in one transaction.
	DeleteCascade(ctx context.Context, id string) error

	ChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error)
}
