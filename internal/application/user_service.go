package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/helpers"
	"videotube/pkg/pagination"
)

// UserService covers registration, sessions, profiles, channel pages and
// watch history.
type UserService struct {
	Repo      repository.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, GCS: gcs, GCSBucket: gcsBucket, Redis: rdb, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(in.Email),
		Password: hash,
		FullName: strings.TrimSpace(in.FullName),
	}
	if u.Username == "" || u.Email == "" {
		return nil, ErrInvalidArgument
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return u, nil
}

// Authenticate validates credentials: identifier may be a username or an
// email address.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, identifier)
	if err != nil {
		u, err = s.Repo.GetByUsername(ctx, identifier)
	}
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"username":   u.Username,
			"email":      u.Email,
			"full_name":  u.FullName,
			"avatar_url": u.AvatarURL,
			"sid":        sid,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(ctx context.Context, identifier, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	// Validate current session id matches the token's sid
	if s.Redis != nil {
		key := sessionKey(u.ID)
		data, rErr := s.Redis.HGetAll(ctx, key).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, "", ErrInvalidCredentials
		}
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return TokenPair{}, "", err
	}
	return pair, u.ID, nil
}

func (s *UserService) Logout(ctx context.Context, userID string) {
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, sessionKey(userID)).Err()
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	FullName *string
	Email    *string
}

// UpdateProfile applies only the provided fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, ErrInvalidArgument
		}
		u.Email = email
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"full_name":  u.FullName,
			"email":      u.Email,
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return u, nil
}

// UploadAvatar stores the image in GCS and points the profile at it.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	return s.uploadImage(ctx, userID, "avatars", r, filename, contentType, func(u *entity.User, url string) {
		u.AvatarURL = url
	})
}

// UploadCover stores the channel cover image in GCS.
func (s *UserService) UploadCover(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	return s.uploadImage(ctx, userID, "covers", r, filename, contentType, func(u *entity.User, url string) {
		u.CoverURL = url
	})
}

func (s *UserService) uploadImage(ctx context.Context, userID, prefix string, r io.Reader, filename, contentType string, apply func(*entity.User, string)) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return "", ErrNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join(prefix, userID, id+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	apply(u, url)
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	if s.Redis != nil {
		_ = s.Redis.HSet(ctx, sessionKey(u.ID), map[string]any{
			"avatar_url": u.AvatarURL,
			"updated_at": nowRFC3339(),
		}).Err()
	}
	return url, nil
}

// Channel returns the public channel page for a username. viewerID may be
// empty for anonymous viewers.
func (s *UserService) Channel(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	p, err := s.Repo.ChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *UserService) RecordWatch(ctx context.Context, userID, videoID string) error {
	return s.Repo.UpsertWatch(ctx, userID, videoID)
}

func (s *UserService) WatchHistory(ctx context.Context, userID string, p pagination.Params) ([]entity.WatchHistoryEntry, pagination.Meta, error) {
	entries, total, err := s.Repo.WatchHistory(ctx, userID, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return entries, p.MetaFor(total), nil
}
