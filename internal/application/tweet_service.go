package application

import (
	"context"
	"errors"
	"strings"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

type TweetService struct {
	Repo  repository.TweetRepository
	Users repository.UserRepository
}

func NewTweetService(repo repository.TweetRepository, users repository.UserRepository) *TweetService {
	return &TweetService{Repo: repo, Users: users}
}

func (s *TweetService) Create(ctx context.Context, actorID, content string) (*entity.TweetWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidArgument
	}
	t := &entity.Tweet{OwnerID: actorID, Content: content}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.Repo.GetWithOwner(ctx, t.ID)
}

func (s *TweetService) ListByUser(ctx context.Context, userID string, p pagination.Params) ([]entity.TweetWithOwner, pagination.Meta, error) {
	if !validID(userID) {
		return nil, pagination.Meta{}, ErrInvalidArgument
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, pagination.Meta{}, ErrNotFound
	}
	tweets, total, err := s.Repo.ListByOwner(ctx, userID, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return tweets, p.MetaFor(total), nil
}

func (s *TweetService) Update(ctx context.Context, tweetID, actorID, content string) (*entity.TweetWithOwner, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidArgument
	}
	t, err := s.owned(ctx, tweetID, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateContent(ctx, t.ID, content); err != nil {
		return nil, err
	}
	return s.Repo.GetWithOwner(ctx, t.ID)
}

func (s *TweetService) Delete(ctx context.Context, tweetID, actorID string) error {
	t, err := s.owned(ctx, tweetID, actorID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, t.ID)
}

func (s *TweetService) owned(ctx context.Context, tweetID, actorID string) (*entity.Tweet, error) {
	if !validID(tweetID) {
		return nil, ErrInvalidArgument
	}
	t, err := s.Repo.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return t, nil
}
