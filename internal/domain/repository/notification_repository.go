package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
)

// NotificationRepository stores in-app notifications written by the notify
// worker.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, ns []entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID string, p pagination.Params) ([]entity.Notification, int64, error)
	MarkRead(ctx context.Context, id string) error
}
