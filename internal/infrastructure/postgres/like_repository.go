package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

// likeColumn maps a target kind to its column. Kinds come from the
// entity.LikeTarget constants, never from user input.
func likeColumn(target entity.LikeTarget) (string, error) {
	switch target {
	case entity.LikeTargetVideo:
		return "video_id", nil
	case entity.LikeTargetComment:
		return "comment_id", nil
	case entity.LikeTargetTweet:
		return "tweet_id", nil
	}
	return "", fmt.Errorf("unknown like target %q", target)
}

// Toggle deletes the edge if present; otherwise inserts it. The insert uses
// ON CONFLICT DO NOTHING against the partial unique index, so a concurrent
// duplicate toggle cannot create a second edge — the loser just observes
// the liked state the winner produced.
func (r *LikeRepository) Toggle(ctx context.Context, userID string, target entity.LikeTarget, targetID string) (bool, error) {
	col, err := likeColumn(target)
	if err != nil {
		return false, err
	}

	res, err := r.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM likes WHERE user_id = $1 AND %s = $2`, col),
		userID, targetID)
	if err != nil {
		return false, err
	}
	if res.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO likes (user_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`, col),
		userID, targetID)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) Count(ctx context.Context, target entity.LikeTarget, targetID string) (int64, error) {
	col, err := likeColumn(target)
	if err != nil {
		return 0, err
	}
	var n int64
	err = r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT count(*) FROM likes WHERE %s = $1`, col),
		targetID).Scan(&n)
	return n, err
}

func (r *LikeRepository) LikedVideos(ctx context.Context, userID string, p pagination.Params) ([]entity.VideoWithOwner, int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+videoWithOwnerColumns+`
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		JOIN users o ON o.id = v.owner_id
		WHERE l.user_id = $1 AND l.video_id IS NOT NULL AND v.is_published
		ORDER BY l.created_at DESC, l.id DESC
		OFFSET $2 LIMIT $3
	`, userID, p.Offset(), p.Limit)
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

	var total int64
	err = r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		WHERE l.user_id = $1 AND l.video_id IS NOT NULL AND v.is_published
	`, userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
