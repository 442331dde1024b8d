package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
)

// TweetRepository defines the interface for tweet storage.
type TweetRepository interface {
	Create(ctx context.Context, t *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	GetWithOwner(ctx context.Context, id string) (*entity.TweetWithOwner, error)
	ListByOwner(ctx context.Context, ownerID string, p pagination.Params) ([]entity.TweetWithOwner, int64, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}
