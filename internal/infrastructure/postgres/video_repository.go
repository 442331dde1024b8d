package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

type VideoRepository struct {
	pool *pgxpool.Pool
}

func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{pool: pool}
}

func (r *VideoRepository) Create(ctx context.Context, v *entity.Video) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO videos (owner_id, title, description, video_url, thumbnail_url, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, views, created_at, updated_at
	`, v.OwnerID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.Duration, v.IsPublished)

	return row.Scan(&v.ID, &v.Views, &v.CreatedAt, &v.UpdatedAt)
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	v := &entity.Video{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, description, video_url, thumbnail_url,
		       duration, views, is_published, created_at, updated_at
		FROM videos
		WHERE id = $1
	`, id)
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

const videoWithOwnerColumns = `
	v.id, v.title, v.description, v.video_url, v.thumbnail_url,
	v.duration, v.views, v.is_published, v.created_at, v.updated_at,
	o.id, o.username, o.full_name, o.avatar_url`

func scanVideoWithOwner(row pgx.Row, v *entity.VideoWithOwner) error {
	return row.Scan(&v.ID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
		&v.Owner.ID, &v.Owner.Username, &v.Owner.FullName, &v.Owner.AvatarURL)
}

func (r *VideoRepository) GetWithOwner(ctx context.Context, id string) (*entity.VideoWithOwner, error) {
	v := &entity.VideoWithOwner{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+videoWithOwnerColumns+`
		FROM videos v
		JOIN users o ON o.id = v.owner_id
		WHERE v.id = $1
	`, id)
	if err := scanVideoWithOwner(row, v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

var videoSortColumns = map[string]string{
	"created_at": "v.created_at",
	"views":      "v.views",
	"duration":   "v.duration",
	"title":      "v.title",
}

func (r *VideoRepository) List(ctx context.Context, f repository.VideoFilter, p pagination.Params) ([]entity.VideoWithOwner, int64, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if !f.IncludeUnpublished {
		where = append(where, "v.is_published")
	}
	if f.OwnerID != "" {
		args = append(args, f.OwnerID)
		where = append(where, fmt.Sprintf("v.owner_id = $%d", len(args)))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		where = append(where, fmt.Sprintf("(v.title ILIKE $%d OR v.description ILIKE $%d)", len(args), len(args)))
	}
	cond := ""
	if len(where) > 0 {
		cond = "WHERE " + strings.Join(where, " AND ")
	}

	// Sort column is resolved through an allowlist; user input never
	// reaches the SQL text directly.
	sortCol, ok := videoSortColumns[f.SortBy]
	if !ok {
		sortCol = "v.created_at"
		f.SortDesc = true
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	orderBy := fmt.Sprintf("ORDER BY %s %s, v.id DESC", sortCol, dir)

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM videos v "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, p.Offset(), p.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM videos v
		JOIN users o ON o.id = v.owner_id
		%s
		%s
		OFFSET $%d LIMIT $%d
	`, videoWithOwnerColumns, cond, orderBy, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	videos := make([]entity.VideoWithOwner, 0, p.Limit)
	for rows.Next() {
		var v entity.VideoWithOwner
		if err := scanVideoWithOwner(rows, &v); err != nil {
			return nil, 0, err
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *VideoRepository) Patch(ctx context.Context, id string, patch entity.VideoPatch) error {
	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Title != nil {
		args = append(args, *patch.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.ThumbnailURL != nil {
		args = append(args, *patch.ThumbnailURL)
		set = append(set, fmt.Sprintf("thumbnail_url = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, time.Now())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	res, err := r.pool.Exec(ctx,
		fmt.Sprintf("UPDATE videos SET %s WHERE id = $%d", strings.Join(set, ", "), len(args)),
		args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) SetPublished(ctx context.Context, id string, published bool) error {
	res, err := r.pool.Exec(ctx,
		`UPDATE videos SET is_published = $1, updated_at = now() WHERE id = $2`, published, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	return err
}

// DeleteCascade removes the video and its children in one transaction:
// likes of the video's comments, the comments, likes of the video itself,
// then the video row. playlist_videos, watch_history and notifications go
// via ON DELETE CASCADE foreign keys.
func (r *VideoRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		DELETE FROM likes WHERE comment_id IN (SELECT id FROM comments WHERE video_id = $1)
	`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE video_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE video_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *VideoRepository) ChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	s := &entity.ChannelStats{}
	row := r.pool.QueryRow(ctx, `
		SELECT
		    (SELECT count(*) FROM videos v WHERE v.owner_id = $1),
		    (SELECT coalesce(sum(v.views), 0) FROM videos v WHERE v.owner_id = $1),
		    (SELECT count(*) FROM subscriptions s WHERE s.channel_id = $1),
		    (SELECT count(*) FROM likes l JOIN videos v ON v.id = l.video_id WHERE v.owner_id = $1)
	`, channelID)
	if err := row.Scan(&s.TotalVideos, &s.TotalViews, &s.TotalSubscribers, &s.TotalLikes); err != nil {
		return nil, err
	}
	return s, nil
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
