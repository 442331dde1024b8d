package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

// Toggle mirrors LikeRepository.Toggle: delete-if-present, otherwise
// insert-on-conflict-do-nothing against the (subscriber, channel) unique
// constraint.
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	res, err := r.pool.Exec(ctx,
		`DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`,
		subscriberID, channelID)
	if err != nil {
		return false, err
	}
	if res.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT subscriptions_edge_key DO NOTHING
	`, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SubscriptionRepository) CountForChannel(ctx context.Context, channelID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM subscriptions WHERE channel_id = $1`, channelID).Scan(&n)
	return n, err
}

// edgeQuery joins the far-side user of a subscription edge. matchCol is the
// filtered column, farCol the joined one; both are fixed strings.
func (r *SubscriptionRepository) edges(ctx context.Context, matchCol, farCol, id string, p pagination.Params) ([]entity.SubscriptionEdge, int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.email, s.created_at
		FROM subscriptions s
		JOIN users u ON u.id = s.`+farCol+`
		WHERE s.`+matchCol+` = $1
		ORDER BY s.created_at DESC, s.id DESC
		OFFSET $2 LIMIT $3
	`, id, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	edges := make([]entity.SubscriptionEdge, 0, p.Limit)
	for rows.Next() {
		var e entity.SubscriptionEdge
		if err := rows.Scan(&e.User.ID, &e.User.Username, &e.User.FullName,
			&e.User.AvatarURL, &e.Email, &e.SubscribedAt); err != nil {
			return nil, 0, err
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx,
		`SELECT count(*) FROM subscriptions s WHERE s.`+matchCol+` = $1`, id).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return edges, total, nil
}

func (r *SubscriptionRepository) Subscribers(ctx context.Context, channelID string, p pagination.Params) ([]entity.SubscriptionEdge, int64, error) {
	return r.edges(ctx, "channel_id", "subscriber_id", channelID, p)
}

func (r *SubscriptionRepository) SubscribedChannels(ctx context.Context, subscriberID string, p pagination.Params) ([]entity.SubscriptionEdge, int64, error) {
	return r.edges(ctx, "subscriber_id", "channel_id", subscriberID, p)
}

func (r *SubscriptionRepository) SubscriberIDs(ctx context.Context, channelID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT subscriber_id FROM subscriptions WHERE channel_id = $1`, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
