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

type TweetRepository struct {
	pool *pgxpool.Pool
}

func NewTweetRepository(pool *pgxpool.Pool) *TweetRepository {
	return &TweetRepository{pool: pool}
}

func (r *TweetRepository) Create(ctx context.Context, t *entity.Tweet) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tweets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, t.OwnerID, t.Content)
	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	t := &entity.Tweet{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE id = $1
	`, id)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

const tweetWithOwnerQuery = `
	SELECT t.id, t.content, t.created_at, t.updated_at,
	       o.id, o.username, o.full_name, o.avatar_url
	FROM tweets t
	JOIN users o ON o.id = t.owner_id`

func scanTweetWithOwner(row pgx.Row, t *entity.TweetWithOwner) error {
	return row.Scan(&t.ID, &t.Content, &t.CreatedAt, &t.UpdatedAt,
		&t.Owner.ID, &t.Owner.Username, &t.Owner.FullName, &t.Owner.AvatarURL)
}

func (r *TweetRepository) GetWithOwner(ctx context.Context, id string) (*entity.TweetWithOwner, error) {
	t := &entity.TweetWithOwner{}
	row := r.pool.QueryRow(ctx, tweetWithOwnerQuery+` WHERE t.id = $1`, id)
	if err := scanTweetWithOwner(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string, p pagination.Params) ([]entity.TweetWithOwner, int64, error) {
	rows, err := r.pool.Query(ctx, tweetWithOwnerQuery+`
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		OFFSET $2 LIMIT $3
	`, ownerID, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tweets := make([]entity.TweetWithOwner, 0, p.Limit)
	for rows.Next() {
		var t entity.TweetWithOwner
		if err := scanTweetWithOwner(rows, &t); err != nil {
			return nil, 0, err
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM tweets WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, content string) error {
	res, err := r.pool.Exec(ctx,
		`UPDATE tweets SET content = $1, updated_at = now() WHERE id = $2`, content, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE tweet_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
