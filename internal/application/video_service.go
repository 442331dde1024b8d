package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/helpers"
	"videotube/pkg/pagination"
)

// VideoService covers publishing, watching, listing/search, channel pages
// and the owner-gated mutations.
type VideoService struct {
	Repo          repository.VideoRepository
	Users         repository.UserRepository
	GCS           *storage.Client
	GCSBucket     string
	Redis         *redis.Client
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESVideosIndex string
	Events        *helpers.RabbitPublisher
	ViewDedupeTTL time.Duration
}

func NewVideoService(repo repository.VideoRepository, users repository.UserRepository, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esVideosIndex string, events *helpers.RabbitPublisher, viewDedupeTTL time.Duration) *VideoService {
	return &VideoService{
		Repo:          repo,
		Users:         users,
		GCS:           gcs,
		GCSBucket:     gcsBucket,
		Redis:         rdb,
		Logger:        logger,
		ES:            es,
		ESVideosIndex: esVideosIndex,
		Events:        events,
		ViewDedupeTTL: viewDedupeTTL,
	}
}

type PublishVideoInput struct {
	Title       string
	Description string
	Duration    float64
	IsPublished bool

	Video         io.Reader
	VideoName     string
	VideoType     string
	Thumbnail     io.Reader
	ThumbnailName string
	ThumbnailType string
}

func (s *VideoService) Publish(ctx context.Context, ownerID string, in PublishVideoInput) (*entity.VideoWithOwner, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidArgument
	}
	if in.Video == nil {
		return nil, ErrInvalidArgument
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}

	videoURL, err := s.uploadMedia(ctx, ownerID, "videos", in.VideoName, in.VideoType, in.Video)
	if err != nil {
		return nil, err
	}
	thumbURL := ""
	if in.Thumbnail != nil {
		thumbURL, err = s.uploadMedia(ctx, ownerID, "thumbnails", in.ThumbnailName, in.ThumbnailType, in.Thumbnail)
		if err != nil {
			return nil, err
		}
	}

	v := &entity.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
		Duration:     in.Duration,
		IsPublished:  in.IsPublished,
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.indexVideo(ctx, v)
	if v.IsPublished {
		s.emitPublished(ctx, v)
	}
	return s.Repo.GetWithOwner(ctx, v.ID)
}

func (s *VideoService) uploadMedia(ctx context.Context, ownerID, prefix, filename, contentType string, r io.Reader) (string, error) {
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join(prefix, ownerID, id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// Watch returns a video for viewing. Unpublished videos are visible only to
// their owner. For other viewers it counts the view (at most once per
// viewer per dedupe window) and records watch history for signed-in ones.
func (s *VideoService) Watch(ctx context.Context, videoID, viewerID string) (*entity.VideoWithOwner, error) {
	if !validID(videoID) {
		return nil, ErrInvalidArgument
	}
	v, err := s.Repo.GetWithOwner(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !v.IsPublished && v.Owner.ID != viewerID {
		return nil, ErrNotFound
	}

	if v.Owner.ID != viewerID {
		if s.shouldCountView(ctx, videoID, viewerID) {
			if err := s.Repo.IncrementViews(ctx, videoID); err == nil {
				v.Views++
			} else if s.Logger != nil {
				s.Logger.WithError(err).WithField("video_id", videoID).Warn("view increment failed")
			}
		}
		if viewerID != "" {
			if err := s.Users.UpsertWatch(ctx, viewerID, videoID); err != nil && s.Logger != nil {
				s.Logger.WithError(err).WithField("video_id", videoID).Warn("watch history write failed")
			}
		}
	}
	return v, nil
}

// shouldCountView dedupes repeat views with a redis SET NX key. Anonymous
// viewers are always counted. Fails open when redis is down.
func (s *VideoService) shouldCountView(ctx context.Context, videoID, viewerID string) bool {
	if s.Redis == nil || viewerID == "" {
		return true
	}
	key := "video:viewed:" + videoID + ":" + viewerID
	ok, err := s.Redis.SetNX(ctx, key, "1", s.ViewDedupeTTL).Result()
	if err != nil {
		return true
	}
	return ok
}

type ListVideosInput struct {
	Query    string
	OwnerID  string
	SortBy   string
	SortType string // asc or desc
	ViewerID string
}

func (s *VideoService) List(ctx context.Context, in ListVideosInput, p pagination.Params) ([]entity.VideoWithOwner, pagination.Meta, error) {
	// Full-text queries go to Elasticsearch when it is configured; the
	// SQL ILIKE filter is the fallback.
	if in.Query != "" && s.ES != nil {
		if videos, meta, err := s.searchVideos(ctx, in.Query, p); err == nil {
			return videos, meta, nil
		} else if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to sql")
		}
	}

	f := repository.VideoFilter{
		Query:    in.Query,
		OwnerID:  in.OwnerID,
		SortBy:   in.SortBy,
		SortDesc: in.SortType != "asc",
		// An owner browsing their own channel sees drafts too.
		IncludeUnpublished: in.OwnerID != "" && in.OwnerID == in.ViewerID,
	}
	videos, total, err := s.Repo.List(ctx, f, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return videos, p.MetaFor(total), nil
}

type UpdateVideoInput struct {
	Title       *string
	Description *string

	Thumbnail     io.Reader
	ThumbnailName string
	ThumbnailType string
}

func (s *VideoService) Update(ctx context.Context, videoID, actorID string, in UpdateVideoInput) (*entity.VideoWithOwner, error) {
	v, err := s.ownedVideo(ctx, videoID, actorID)
	if err != nil {
		return nil, err
	}

	patch := entity.VideoPatch{Description: in.Description}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, ErrInvalidArgument
		}
		patch.Title = &title
	}
	if in.Thumbnail != nil {
		url, err := s.uploadMedia(ctx, actorID, "thumbnails", in.ThumbnailName, in.ThumbnailType, in.Thumbnail)
		if err != nil {
			return nil, err
		}
		patch.ThumbnailURL = &url
	}
	if err := s.Repo.Patch(ctx, v.ID, patch); err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetByID(ctx, v.ID)
	if err == nil {
		s.indexVideo(ctx, updated)
	}
	return s.Repo.GetWithOwner(ctx, v.ID)
}

// TogglePublish flips the publication flag and reports the new state.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, actorID string) (bool, error) {
	v, err := s.ownedVideo(ctx, videoID, actorID)
	if err != nil {
		return false, err
	}
	next := !v.IsPublished
	if err := s.Repo.SetPublished(ctx, v.ID, next); err != nil {
		return false, err
	}
	v.IsPublished = next
	s.indexVideo(ctx, v)
	if next {
		s.emitPublished(ctx, v)
	}
	return next, nil
}

// Delete removes the video and cascades over its comments and likes in one
// transaction, then drops it from the search index.
func (s *VideoService) Delete(ctx context.Context, videoID, actorID string) error {
	v, err := s.ownedVideo(ctx, videoID, actorID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteCascade(ctx, v.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.deleteFromIndex(ctx, v.ID)
	return nil
}

func (s *VideoService) ChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	if !validID(channelID) {
		return nil, ErrInvalidArgument
	}
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		return nil, ErrNotFound
	}
	return s.Repo.ChannelStats(ctx, channelID)
}

// ownedVideo loads a video and verifies the actor owns it.
func (s *VideoService) ownedVideo(ctx context.Context, videoID, actorID string) (*entity.Video, error) {
	if !validID(videoID) {
		return nil, ErrInvalidArgument
	}
	v, err := s.Repo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if v.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return v, nil
}

func (s *VideoService) emitPublished(ctx context.Context, v *entity.Video) {
	if s.Events == nil {
		return
	}
	evt := entity.VideoPublishedEvent{
		VideoID:    v.ID,
		ChannelID:  v.OwnerID,
		Title:      v.Title,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Events.PublishJSON(ctx, evt); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("video_id", v.ID).Warn("publish event failed")
	}
}

func (s *VideoService) indexVideo(ctx context.Context, v *entity.Video) {
	if s.ES == nil || s.ESVideosIndex == "" {
		return
	}
	doc := map[string]any{
		"id":           v.ID,
		"owner_id":     v.OwnerID,
		"title":        v.Title,
		"description":  v.Description,
		"is_published": v.IsPublished,
		"created_at":   v.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESVideosIndex, DocumentID: v.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("video_id", v.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("video_id", v.ID).Warn("es index response error")
	}
}

func (s *VideoService) deleteFromIndex(ctx context.Context, videoID string) {
	if s.ES == nil || s.ESVideosIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESVideosIndex, DocumentID: videoID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("video_id", videoID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// searchVideos runs a multi_match query and hydrates the hits from
// Postgres so responses stay consistent with the store.
func (s *VideoService) searchVideos(ctx context.Context, q string, p pagination.Params) ([]entity.VideoWithOwner, pagination.Meta, error) {
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "description"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"is_published": true},
				},
			},
		},
		"from": p.Offset(),
		"size": p.Limit,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESVideosIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
		s.ES.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, pagination.Meta{}, errors.New("es search: " + res.Status())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, pagination.Meta{}, err
	}

	videos := make([]entity.VideoWithOwner, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		v, err := s.Repo.GetWithOwner(ctx, h.ID)
		if err != nil {
			// Index can lag a delete; skip stale hits.
			continue
		}
		videos = append(videos, *v)
	}
	return videos, p.MetaFor(parsed.Hits.Total.Value), nil
}
