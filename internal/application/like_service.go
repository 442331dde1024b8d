package application

import (
	"context"
	"errors"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

// LikeService is the relationship-toggle core for likes. The per-kind
// methods differ only in the existence check and the wording.
type LikeService struct {
	Repo     repository.LikeRepository
	Videos   repository.VideoRepository
	Comments repository.CommentRepository
	Tweets   repository.TweetRepository
}

func NewLikeService(repo repository.LikeRepository, videos repository.VideoRepository, comments repository.CommentRepository, tweets repository.TweetRepository) *LikeService {
	return &LikeService{Repo: repo, Videos: videos, Comments: comments, Tweets: tweets}
}

// toggle flips the (actor, target) edge after checking the target exists,
// then reports the new state with a fresh count.
func (s *LikeService) toggle(ctx context.Context, actorID string, target entity.LikeTarget, targetID string, exists func(context.Context, string) error) (*entity.ToggleResult, error) {
	if !validID(targetID) {
		return nil, ErrInvalidArgument
	}
	if err := exists(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	active, err := s.Repo.Toggle(ctx, actorID, target, targetID)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.Count(ctx, target, targetID)
	if err != nil {
		return nil, err
	}
	return &entity.ToggleResult{Active: active, TotalCount: total, TargetID: targetID}, nil
}

func (s *LikeService) ToggleVideoLike(ctx context.Context, actorID, videoID string) (*entity.ToggleResult, error) {
	return s.toggle(ctx, actorID, entity.LikeTargetVideo, videoID, func(ctx context.Context, id string) error {
		_, err := s.Videos.GetByID(ctx, id)
		return err
	})
}

func (s *LikeService) ToggleCommentLike(ctx context.Context, actorID, commentID string) (*entity.ToggleResult, error) {
	return s.toggle(ctx, actorID, entity.LikeTargetComment, commentID, func(ctx context.Context, id string) error {
		_, err := s.Comments.GetByID(ctx, id)
		return err
	})
}

func (s *LikeService) ToggleTweetLike(ctx context.Context, actorID, tweetID string) (*entity.ToggleResult, error) {
	return s.toggle(ctx, actorID, entity.LikeTargetTweet, tweetID, func(ctx context.Context, id string) error {
		_, err := s.Tweets.GetByID(ctx, id)
		return err
	})
}

// LikedVideos lists the session actor's liked, still-published videos,
// newest like first.
func (s *LikeService) LikedVideos(ctx context.Context, actorID string, p pagination.Params) ([]entity.VideoWithOwner, pagination.Meta, error) {
	videos, total, err := s.Repo.LikedVideos(ctx, actorID, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return videos, p.MetaFor(total), nil
}
