package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, avatar_url, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.Password, u.FullName, u.AvatarURL, u.CoverURL)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

const userColumns = `id, username, email, password_hash, full_name, avatar_url, cover_url, created_at, updated_at`

func (r *UserRepository) scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.FullName,
		&u.AvatarURL, &u.CoverURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, full_name = $4,
		    avatar_url = $5, cover_url = $6, updated_at = $7
		WHERE id = $8
	`, u.Username, u.Email, u.Password, u.FullName, u.AvatarURL, u.CoverURL, u.UpdatedAt, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	// NULLIF turns an empty viewer id into NULL so the EXISTS clause is
	// simply false for anonymous viewers.
	row := r.pool.QueryRow(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.cover_url,
		       (SELECT count(*) FROM subscriptions s WHERE s.channel_id = u.id),
		       (SELECT count(*) FROM subscriptions s WHERE s.subscriber_id = u.id),
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = u.id AND s.subscriber_id = NULLIF($2, '')::uuid
		       )
		FROM users u
		WHERE lower(u.username) = lower($1)
	`, username, viewerID)

	p := &entity.ChannelProfile{}
	if err := row.Scan(&p.ID, &p.Username, &p.FullName, &p.AvatarURL, &p.CoverURL,
		&p.TotalSubscribers, &p.TotalSubscribedTo, &p.IsSubscribed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *UserRepository) UpsertWatch(ctx context.Context, userID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watch_history (user_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = now()
	`, userID, videoID)
	return err
}

func (r *UserRepository) WatchHistory(ctx context.Context, userID string, p pagination.Params) ([]entity.WatchHistoryEntry, int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url,
		       w.watched_at
		FROM watch_history w
		JOIN videos v ON v.id = w.video_id
		JOIN users o ON o.id = v.owner_id
		WHERE w.user_id = $1 AND v.is_published
		ORDER BY w.watched_at DESC, v.id DESC
		OFFSET $2 LIMIT $3
	`, userID, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]entity.WatchHistoryEntry, 0, p.Limit)
	for rows.Next() {
		var e entity.WatchHistoryEntry
		v := &e.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.Username, &v.Owner.FullName, &v.Owner.AvatarURL,
			&e.WatchedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx, `
		SELECT count(*) FROM watch_history w
		JOIN videos v ON v.id = w.video_id
		WHERE w.user_id = $1 AND v.is_published
	`, userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
