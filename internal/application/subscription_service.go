package application

import (
	"context"
	"errors"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

// SubscriptionService is the relationship-toggle core for channel
// subscriptions.
type SubscriptionService struct {
	Repo  repository.SubscriptionRepository
	Users repository.UserRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository, users repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{Repo: repo, Users: users}
}

// Toggle flips the (subscriber, channel) edge. Subscribing to yourself is
// rejected before touching storage; the schema CHECK is the backstop.
func (s *SubscriptionService) Toggle(ctx context.Context, actorID, channelID string) (*entity.ToggleResult, error) {
	if !validID(channelID) {
		return nil, ErrInvalidArgument
	}
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actorID == channelID {
		return nil, ErrSelfSubscription
	}

	active, err := s.Repo.Toggle(ctx, actorID, channelID)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.CountForChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return &entity.ToggleResult{Active: active, TotalCount: total, TargetID: channelID}, nil
}

func (s *SubscriptionService) Subscribers(ctx context.Context, channelID string, p pagination.Params) ([]entity.SubscriptionEdge, pagination.Meta, error) {
	if !validID(channelID) {
		return nil, pagination.Meta{}, ErrInvalidArgument
	}
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		return nil, pagination.Meta{}, ErrNotFound
	}
	edges, total, err := s.Repo.Subscribers(ctx, channelID, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return edges, p.MetaFor(total), nil
}

func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string, p pagination.Params) ([]entity.SubscriptionEdge, pagination.Meta, error) {
	if !validID(subscriberID) {
		return nil, pagination.Meta{}, ErrInvalidArgument
	}
	if _, err := s.Users.GetByID(ctx, subscriberID); err != nil {
		return nil, pagination.Meta{}, ErrNotFound
	}
	edges, total, err := s.Repo.SubscribedChannels(ctx, subscriberID, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return edges, p.MetaFor(total), nil
}
