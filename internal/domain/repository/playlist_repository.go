package repository

import (
	"context"

	"videotube/internal/domain/entity"
)

// PlaylistRepository defines the interface for playlist storage.
//
// AddVideo returns ErrDuplicate when the video is already in the playlist;
// RemoveVideo returns ErrNotFound when it is not.
type PlaylistRepository interface {
	Create(ctx context.Context, p *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	GetWithVideos(ctx context.Context, id string) (*entity.PlaylistWithVideos, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.PlaylistWithVideos, error)
	Patch(ctx context.Context, id string, patch entity.PlaylistPatch) error
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
	Delete(ctx context.Context, id string) error
}
