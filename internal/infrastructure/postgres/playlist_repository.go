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
)

type PlaylistRepository struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepository(pool *pgxpool.Pool) *PlaylistRepository {
	return &PlaylistRepository{pool: pool}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *entity.Playlist) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO playlists (owner_id, name, description, is_public)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.OwnerID, p.Name, p.Description, p.IsPublic)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	p := &entity.Playlist{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, description, is_public, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.IsPublic,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlaylistRepository) loadVideos(ctx context.Context, playlistID string) ([]entity.PlaylistVideo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.title, v.description, v.thumbnail_url, v.duration, v.views, pv.added_at
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = $1 AND v.is_published
		ORDER BY pv.position, pv.added_at
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]entity.PlaylistVideo, 0)
	for rows.Next() {
		var v entity.PlaylistVideo
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.AddedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *PlaylistRepository) GetWithVideos(ctx context.Context, id string) (*entity.PlaylistWithVideos, error) {
	p := &entity.PlaylistWithVideos{}
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.name, p.description, p.is_public, p.created_at, p.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url
		FROM playlists p
		JOIN users o ON o.id = p.owner_id
		WHERE p.id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt,
		&p.Owner.ID, &p.Owner.Username, &p.Owner.FullName, &p.Owner.AvatarURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	videos, err := r.loadVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Videos = videos
	p.VideoCount = len(videos)
	return p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.PlaylistWithVideos, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.description, p.is_public, p.created_at, p.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url,
		       (SELECT count(*) FROM playlist_videos pv WHERE pv.playlist_id = p.id)
		FROM playlists p
		JOIN users o ON o.id = p.owner_id
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := make([]entity.PlaylistWithVideos, 0)
	for rows.Next() {
		var p entity.PlaylistWithVideos
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt,
			&p.Owner.ID, &p.Owner.Username, &p.Owner.FullName, &p.Owner.AvatarURL,
			&p.VideoCount); err != nil {
			return nil, err
		}
		p.Videos = []entity.PlaylistVideo{}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (r *PlaylistRepository) Patch(ctx context.Context, id string, patch entity.PlaylistPatch) error {
	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.IsPublic != nil {
		args = append(args, *patch.IsPublic)
		set = append(set, fmt.Sprintf("is_public = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, time.Now())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	res, err := r.pool.Exec(ctx,
		fmt.Sprintf("UPDATE playlists SET %s WHERE id = $%d", strings.Join(set, ", "), len(args)),
		args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	res, err := r.pool.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id, position)
		VALUES ($1, $2, (SELECT coalesce(max(position), 0) + 1 FROM playlist_videos WHERE playlist_id = $1))
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`, playlistID, videoID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	res, err := r.pool.Exec(ctx,
		`DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`,
		playlistID, videoID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	// playlist_videos rows go via ON DELETE CASCADE.
	res, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
