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

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (video_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.VideoID, c.OwnerID, c.Content)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c := &entity.Comment{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, video_id, owner_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

const commentWithOwnerQuery = `
	SELECT c.id, c.video_id, c.content, c.created_at, c.updated_at,
	       o.id, o.username, o.full_name, o.avatar_url
	FROM comments c
	JOIN users o ON o.id = c.owner_id`

func scanCommentWithOwner(row pgx.Row, c *entity.CommentWithOwner) error {
	return row.Scan(&c.ID, &c.VideoID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
		&c.Owner.ID, &c.Owner.Username, &c.Owner.FullName, &c.Owner.AvatarURL)
}

func (r *CommentRepository) GetWithOwner(ctx context.Context, id string) (*entity.CommentWithOwner, error) {
	c := &entity.CommentWithOwner{}
	row := r.pool.QueryRow(ctx, commentWithOwnerQuery+` WHERE c.id = $1`, id)
	if err := scanCommentWithOwner(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, p pagination.Params) ([]entity.CommentWithOwner, int64, error) {
	rows, err := r.pool.Query(ctx, commentWithOwnerQuery+`
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		OFFSET $2 LIMIT $3
	`, videoID, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	comments := make([]entity.CommentWithOwner, 0, p.Limit)
	for rows.Next() {
		var c entity.CommentWithOwner
		if err := scanCommentWithOwner(rows, &c); err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM comments WHERE video_id = $1`, videoID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) error {
	res, err := r.pool.Exec(ctx,
		`UPDATE comments SET content = $1, updated_at = now() WHERE id = $2`, content, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	// Likes of the comment go first; same edge shape as the video cascade.
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE comment_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
