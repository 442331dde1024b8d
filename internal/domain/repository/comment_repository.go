package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
)

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetWithOwner(ctx context.Context, id string) (*entity.CommentWithOwner, error)
	ListByVideo(ctx context.Context, videoID string, p pagination.Params) ([]entity.CommentWithOwner, int64, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}
