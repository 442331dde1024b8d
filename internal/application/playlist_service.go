package application

import (
	"context"
	"errors"
	"strings"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
)

const (
	playlistNameMin = 3
	playlistNameMax = 50
	playlistDescMax = 200
)

// PlaylistService: every mutation is owner-gated; private playlists are
// readable only by their owner.
type PlaylistService struct {
	Repo   repository.PlaylistRepository
	Videos repository.VideoRepository
}

func NewPlaylistService(repo repository.PlaylistRepository, videos repository.VideoRepository) *PlaylistService {
	return &PlaylistService{Repo: repo, Videos: videos}
}

func validPlaylistName(name string) bool {
	n := len(name)
	return n >= playlistNameMin && n <= playlistNameMax
}

type CreatePlaylistInput struct {
	Name        string
	Description string
	IsPublic    *bool
}

func (s *PlaylistService) Create(ctx context.Context, actorID string, in CreatePlaylistInput) (*entity.PlaylistWithVideos, error) {
	name := strings.TrimSpace(in.Name)
	desc := strings.TrimSpace(in.Description)
	if !validPlaylistName(name) || len(desc) > playlistDescMax {
		return nil, ErrInvalidArgument
	}
	p := &entity.Playlist{OwnerID: actorID, Name: name, Description: desc, IsPublic: true}
	if in.IsPublic != nil {
		p.IsPublic = *in.IsPublic
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.Repo.GetWithVideos(ctx, p.ID)
}

func (s *PlaylistService) ListByUser(ctx context.Context, userID, viewerID string) ([]entity.PlaylistWithVideos, error) {
	if !validID(userID) {
		return nil, ErrInvalidArgument
	}
	playlists, err := s.Repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if userID == viewerID {
		return playlists, nil
	}
	visible := make([]entity.PlaylistWithVideos, 0, len(playlists))
	for _, p := range playlists {
		if p.IsPublic {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (s *PlaylistService) Get(ctx context.Context, playlistID, viewerID string) (*entity.PlaylistWithVideos, error) {
	if !validID(playlistID) {
		return nil, ErrInvalidArgument
	}
	p, err := s.Repo.GetWithVideos(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.IsPublic && p.Owner.ID != viewerID {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *PlaylistService) Update(ctx context.Context, playlistID, actorID string, patch entity.PlaylistPatch) (*entity.PlaylistWithVideos, error) {
	p, err := s.owned(ctx, playlistID, actorID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if !validPlaylistName(name) {
			return nil, ErrInvalidArgument
		}
		patch.Name = &name
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		if len(desc) > playlistDescMax {
			return nil, ErrInvalidArgument
		}
		patch.Description = &desc
	}
	if err := s.Repo.Patch(ctx, p.ID, patch); err != nil {
		return nil, err
	}
	return s.Repo.GetWithVideos(ctx, p.ID)
}

func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.PlaylistWithVideos, error) {
	if !validID(videoID) {
		return nil, ErrInvalidArgument
	}
	p, err := s.owned(ctx, playlistID, actorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Repo.AddVideo(ctx, p.ID, videoID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return s.Repo.GetWithVideos(ctx, p.ID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.PlaylistWithVideos, error) {
	if !validID(videoID) {
		return nil, ErrInvalidArgument
	}
	p, err := s.owned(ctx, playlistID, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.RemoveVideo(ctx, p.ID, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.GetWithVideos(ctx, p.ID)
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, actorID string) error {
	p, err := s.owned(ctx, playlistID, actorID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, p.ID)
}

func (s *PlaylistService) owned(ctx context.Context, playlistID, actorID string) (*entity.Playlist, error) {
	if !validID(playlistID) {
		return nil, ErrInvalidArgument
	}
	p, err := s.Repo.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return p, nil
}
