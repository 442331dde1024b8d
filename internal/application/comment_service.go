package application

import (
	"context"
	"errors"
	"strings"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

// CommentService: add/list are keyed by video, update/delete are
// owner-gated.
type CommentService struct {
	Repo   repository.CommentRepository
	Videos repository.VideoRepository
}

func NewCommentService(repo repository.CommentRepository, videos repository.VideoRepository) *CommentService {
	return &CommentService{Repo: repo, Videos: videos}
}

func (s *CommentService) Add(ctx context.Context, videoID, actorID, content string) (*entity.CommentWithOwner, error) {
	if !validID(videoID) {
		return nil, ErrInvalidArgument
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidArgument
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c := &entity.Comment{VideoID: videoID, OwnerID: actorID, Content: content}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.Repo.GetWithOwner(ctx, c.ID)
}

func (s *CommentService) ListByVideo(ctx context.Context, videoID string, p pagination.Params) ([]entity.CommentWithOwner, pagination.Meta, error) {
	if !validID(videoID) {
		return nil, pagination.Meta{}, ErrInvalidArgument
	}
	comments, total, err := s.Repo.ListByVideo(ctx, videoID, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return comments, p.MetaFor(total), nil
}

func (s *CommentService) Update(ctx context.Context, commentID, actorID, content string) (*entity.CommentWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidArgument
	}
	c, err := s.owned(ctx, commentID, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateContent(ctx, c.ID, content); err != nil {
		return nil, err
	}
	return s.Repo.GetWithOwner(ctx, c.ID)
}

func (s *CommentService) Delete(ctx context.Context, commentID, actorID string) error {
	c, err := s.owned(ctx, commentID, actorID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, c.ID)
}

func (s *CommentService) owned(ctx context.Context, commentID, actorID string) (*entity.Comment, error) {
	if !validID(commentID) {
		return nil, ErrInvalidArgument
	}
	c, err := s.Repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return c, nil
}
