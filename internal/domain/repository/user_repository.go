package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
)

// UserRepository defines the interface for user and watch-history storage.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error

	// ChannelProfile joins the user with subscription counts; viewerID may
	// be empty for anonymous viewers (IsSubscribed is then always false).
	ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)

	// UpsertWatch records that the user watched the video; re-watching
	// bumps the timestamp instead of inserting a second row.
	UpsertWatch(ctx context.Context, userID, videoID string) error
	WatchHistory(ctx context.Context, userID string, p pagination.Params) ([]entity.WatchHistoryEntry, int64, error)
}
