package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

// NotificationService serves in-app notifications and fans out
// video-published events to subscribers (consumed by cmd/notify_worker).
type NotificationService struct {
	Repo          repository.NotificationRepository
	Subscriptions repository.SubscriptionRepository
	Users         repository.UserRepository
	Logger        *logrus.Logger
}

func NewNotificationService(repo repository.NotificationRepository, subs repository.SubscriptionRepository, users repository.UserRepository, logger *logrus.Logger) *NotificationService {
	return &NotificationService{Repo: repo, Subscriptions: subs, Users: users, Logger: logger}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string, p pagination.Params) ([]entity.Notification, pagination.Meta, error) {
	notifications, total, err := s.Repo.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return notifications, p.MetaFor(total), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, actorID string) error {
	if !validID(notificationID) {
		return ErrInvalidArgument
	}
	n, err := s.Repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if n.UserID != actorID {
		return ErrForbidden
	}
	return s.Repo.MarkRead(ctx, n.ID)
}

// FanOutVideoPublished writes one notification per subscriber of the
// publishing channel.
func (s *NotificationService) FanOutVideoPublished(ctx context.Context, evt entity.VideoPublishedEvent) error {
	channel, err := s.Users.GetByID(ctx, evt.ChannelID)
	if err != nil {
		// Channel deleted between publish and fanout; nothing to do.
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	subscriberIDs, err := s.Subscriptions.SubscriberIDs(ctx, evt.ChannelID)
	if err != nil {
		return err
	}
	if len(subscriberIDs) == 0 {
		return nil
	}

	msg := fmt.Sprintf("%s uploaded: %s", channel.Username, evt.Title)
	batch := make([]entity.Notification, 0, len(subscriberIDs))
	for _, id := range subscriberIDs {
		batch = append(batch, entity.Notification{
			UserID:  id,
			Kind:    entity.NotificationVideoPublished,
			ActorID: evt.ChannelID,
			VideoID: evt.VideoID,
			Message: msg,
		})
	}
	if err := s.Repo.CreateBatch(ctx, batch); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"video_id":    evt.VideoID,
			"channel_id":  evt.ChannelID,
			"subscribers": len(batch),
		}).Info("video published fanout done")
	}
	return nil
}
