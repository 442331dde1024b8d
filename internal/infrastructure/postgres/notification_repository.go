package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) CreateBatch(ctx context.Context, ns []entity.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, n := range ns {
		batch.Queue(`
			INSERT INTO notifications (user_id, kind, actor_id, video_id, message)
			VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5)
		`, n.UserID, n.Kind, n.ActorID, n.VideoID, n.Message)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	n := &entity.Notification{}
	var videoID *string
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, kind, actor_id, video_id, message, read, created_at
		FROM notifications
		WHERE id = $1
	`, id)
	if err := row.Scan(&n.ID, &n.UserID, &n.Kind, &n.ActorID, &videoID,
		&n.Message, &n.Read, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if videoID != nil {
		n.VideoID = *videoID
	}
	return n, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, p pagination.Params) ([]entity.Notification, int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, kind, actor_id, video_id, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`, userID, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := make([]entity.Notification, 0, p.Limit)
	for rows.Next() {
		var n entity.Notification
		var videoID *string
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.ActorID, &videoID,
			&n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		if videoID != nil {
			n.VideoID = *videoID
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
