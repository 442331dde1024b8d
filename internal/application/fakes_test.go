package application

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"
	"videotube/pkg/pagination"
)

// In-memory repositories for service tests. They enforce the same
// uniqueness rules the schema does, so toggle and duplicate paths behave
// like the real storage.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	watch map[string]map[string]time.Time // userID -> videoID -> watchedAt
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, watch: map[string]map[string]time.Time{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) || strings.EqualFold(existing.Username, u.Username) {
			return repository.ErrDuplicate
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicate
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &entity.ChannelProfile{UserSummary: u.Summary(), CoverURL: u.CoverURL}, nil
}

func (r *fakeUserRepo) UpsertWatch(_ context.Context, userID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.watch[userID] == nil {
		r.watch[userID] = map[string]time.Time{}
	}
	r.watch[userID][videoID] = time.Now()
	return nil
}

func (r *fakeUserRepo) WatchHistory(_ context.Context, userID string, p pagination.Params) ([]entity.WatchHistoryEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]entity.WatchHistoryEntry, 0)
	for videoID, at := range r.watch[userID] {
		entries = append(entries, entity.WatchHistoryEntry{
			Video:     entity.VideoWithOwner{ID: videoID},
			WatchedAt: at,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].WatchedAt.After(entries[j].WatchedAt) })
	return page(entries, p), int64(len(r.watch[userID])), nil
}

func (r *fakeUserRepo) add(username, email string) *entity.User {
	u := &entity.User{Username: username, Email: email, Password: "x", FullName: username}
	_ = r.Create(context.Background(), u)
	return u
}

type fakeVideoRepo struct {
	mu     sync.Mutex
	videos map[string]*entity.Video
	users  *fakeUserRepo

	// linked repos for DeleteCascade
	comments *fakeCommentRepo
	likes    *fakeLikeRepo
	subs     *fakeSubRepo
}

func newFakeVideoRepo(users *fakeUserRepo) *fakeVideoRepo {
	return &fakeVideoRepo{videos: map[string]*entity.Video{}, users: users}
}

func (r *fakeVideoRepo) Create(_ context.Context, v *entity.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	cp := *v
	r.videos[v.ID] = &cp
	return nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*entity.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVideoRepo) withOwner(v *entity.Video) entity.VideoWithOwner {
	var owner entity.UserSummary
	if r.users != nil {
		if u, err := r.users.GetByID(context.Background(), v.OwnerID); err == nil {
			owner = u.Summary()
		} else {
			owner = entity.UserSummary{ID: v.OwnerID}
		}
	}
	return entity.VideoWithOwner{
		ID: v.ID, Title: v.Title, Description: v.Description,
		VideoURL: v.VideoURL, ThumbnailURL: v.ThumbnailURL,
		Duration: v.Duration, Views: v.Views, IsPublished: v.IsPublished,
		CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt, Owner: owner,
	}
}

func (r *fakeVideoRepo) GetWithOwner(_ context.Context, id string) (*entity.VideoWithOwner, error) {
	r.mu.Lock()
	v, ok := r.videos[id]
	r.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	vo := r.withOwner(v)
	return &vo, nil
}

func (r *fakeVideoRepo) List(_ context.Context, f repository.VideoFilter, p pagination.Params) ([]entity.VideoWithOwner, int64, error) {
	r.mu.Lock()
	matched := make([]*entity.Video, 0)
	for _, v := range r.videos {
		if f.OwnerID != "" && v.OwnerID != f.OwnerID {
			continue
		}
		if !f.IncludeUnpublished && !v.IsPublished {
			continue
		}
		if f.Query != "" {
			q := strings.ToLower(f.Query)
			if !strings.Contains(strings.ToLower(v.Title), q) && !strings.Contains(strings.ToLower(v.Description), q) {
				continue
			}
		}
		matched = append(matched, v)
	}
	r.mu.Unlock()
	sort.Slice(matched, func(i, j int) bool {
		if f.SortDesc {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	out := make([]entity.VideoWithOwner, 0, len(matched))
	for _, v := range matched {
		out = append(out, r.withOwner(v))
	}
	return page(out, p), int64(len(matched)), nil
}

func (r *fakeVideoRepo) Patch(_ context.Context, id string, patch entity.VideoPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok {
		return repository.ErrNotFound
	}
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	if patch.Description != nil {
		v.Description = *patch.Description
	}
	if patch.ThumbnailURL != nil {
		v.ThumbnailURL = *patch.ThumbnailURL
	}
	v.UpdatedAt = time.Now()
	return nil
}

func (r *fakeVideoRepo) SetPublished(_ context.Context, id string, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.IsPublished = published
	return nil
}

func (r *fakeVideoRepo) IncrementViews(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Views++
	return nil
}

func (r *fakeVideoRepo) DeleteCascade(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.videos[id]; !ok {
		r.mu.Unlock()
		return repository.ErrNotFound
	}
	delete(r.videos, id)
	r.mu.Unlock()

	if r.comments != nil {
		for _, cid := range r.comments.idsForVideo(id) {
			if r.likes != nil {
				r.likes.removeTarget(entity.LikeTargetComment, cid)
			}
			_ = r.comments.Delete(ctx, cid)
		}
	}
	if r.likes != nil {
		r.likes.removeTarget(entity.LikeTargetVideo, id)
	}
	return nil
}

func (r *fakeVideoRepo) ChannelStats(_ context.Context, channelID string) (*entity.ChannelStats, error) {
	r.mu.Lock()
	stats := &entity.ChannelStats{}
	ids := make([]string, 0)
	for _, v := range r.videos {
		if v.OwnerID == channelID {
			stats.TotalVideos++
			stats.TotalViews += v.Views
			ids = append(ids, v.ID)
		}
	}
	r.mu.Unlock()
	if r.likes != nil {
		for _, id := range ids {
			n, _ := r.likes.Count(context.Background(), entity.LikeTargetVideo, id)
			stats.TotalLikes += n
		}
	}
	if r.subs != nil {
		stats.TotalSubscribers, _ = r.subs.CountForChannel(context.Background(), channelID)
	}
	return stats, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment
	users    *fakeUserRepo
}

func newFakeCommentRepo(users *fakeUserRepo) *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*entity.Comment{}, users: users}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) withOwner(c *entity.Comment) entity.CommentWithOwner {
	var owner entity.UserSummary
	if u, err := r.users.GetByID(context.Background(), c.OwnerID); err == nil {
		owner = u.Summary()
	}
	return entity.CommentWithOwner{
		ID: c.ID, VideoID: c.VideoID, Content: c.Content,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt, Owner: owner,
	}
}

func (r *fakeCommentRepo) GetWithOwner(_ context.Context, id string) (*entity.CommentWithOwner, error) {
	r.mu.Lock()
	c, ok := r.comments[id]
	r.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	co := r.withOwner(c)
	return &co, nil
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID string, p pagination.Params) ([]entity.CommentWithOwner, int64, error) {
	r.mu.Lock()
	matched := make([]*entity.Comment, 0)
	for _, c := range r.comments {
		if c.VideoID == videoID {
			matched = append(matched, c)
		}
	}
	r.mu.Unlock()
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	out := make([]entity.CommentWithOwner, 0, len(matched))
	for _, c := range matched {
		out = append(out, r.withOwner(c))
	}
	return page(out, p), int64(len(matched)), nil
}

func (r *fakeCommentRepo) UpdateContent(_ context.Context, id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) idsForVideo(videoID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0)
	for id, c := range r.comments {
		if c.VideoID == videoID {
			ids = append(ids, id)
		}
	}
	return ids
}

type fakeTweetRepo struct {
	mu     sync.Mutex
	tweets map[string]*entity.Tweet
	users  *fakeUserRepo
}

func newFakeTweetRepo(users *fakeUserRepo) *fakeTweetRepo {
	return &fakeTweetRepo{tweets: map[string]*entity.Tweet{}, users: users}
}

func (r *fakeTweetRepo) Create(_ context.Context, t *entity.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tweets[t.ID] = &cp
	return nil
}

func (r *fakeTweetRepo) GetByID(_ context.Context, id string) (*entity.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tweets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTweetRepo) withOwner(t *entity.Tweet) entity.TweetWithOwner {
	var owner entity.UserSummary
	if u, err := r.users.GetByID(context.Background(), t.OwnerID); err == nil {
		owner = u.Summary()
	}
	return entity.TweetWithOwner{ID: t.ID, Content: t.Content, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt, Owner: owner}
}

func (r *fakeTweetRepo) GetWithOwner(_ context.Context, id string) (*entity.TweetWithOwner, error) {
	r.mu.Lock()
	t, ok := r.tweets[id]
	r.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	to := r.withOwner(t)
	return &to, nil
}

func (r *fakeTweetRepo) ListByOwner(_ context.Context, ownerID string, p pagination.Params) ([]entity.TweetWithOwner, int64, error) {
	r.mu.Lock()
	matched := make([]*entity.Tweet, 0)
	for _, t := range r.tweets {
		if t.OwnerID == ownerID {
			matched = append(matched, t)
		}
	}
	r.mu.Unlock()
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	out := make([]entity.TweetWithOwner, 0, len(matched))
	for _, t := range matched {
		out = append(out, r.withOwner(t))
	}
	return page(out, p), int64(len(matched)), nil
}

func (r *fakeTweetRepo) UpdateContent(_ context.Context, id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tweets[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Content = content
	t.UpdatedAt = time.Now()
	return nil
}

func (r *fakeTweetRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tweets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tweets, id)
	return nil
}

// fakeLikeRepo mirrors the partial unique indexes: one edge per
// (user, kind, target). Toggle is atomic under the mutex.
type fakeLikeRepo struct {
	mu     sync.Mutex
	edges  map[string]time.Time
	videos *fakeVideoRepo
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{edges: map[string]time.Time{}}
}

func likeKey(userID string, target entity.LikeTarget, targetID string) string {
	return userID + "|" + string(target) + "|" + targetID
}

func (r *fakeLikeRepo) Toggle(_ context.Context, userID string, target entity.LikeTarget, targetID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey(userID, target, targetID)
	if _, ok := r.edges[key]; ok {
		delete(r.edges, key)
		return false, nil
	}
	r.edges[key] = time.Now()
	return true, nil
}

func (r *fakeLikeRepo) Count(_ context.Context, target entity.LikeTarget, targetID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	suffix := "|" + string(target) + "|" + targetID
	var n int64
	for key := range r.edges {
		if strings.HasSuffix(key, suffix) {
			n++
		}
	}
	return n, nil
}

func (r *fakeLikeRepo) LikedVideos(_ context.Context, userID string, p pagination.Params) ([]entity.VideoWithOwner, int64, error) {
	type likedAt struct {
		videoID string
		at      time.Time
	}
	r.mu.Lock()
	liked := make([]likedAt, 0)
	prefix := userID + "|" + string(entity.LikeTargetVideo) + "|"
	for key, at := range r.edges {
		if strings.HasPrefix(key, prefix) {
			liked = append(liked, likedAt{videoID: strings.TrimPrefix(key, prefix), at: at})
		}
	}
	r.mu.Unlock()

	sort.Slice(liked, func(i, j int) bool { return liked[i].at.After(liked[j].at) })
	out := make([]entity.VideoWithOwner, 0, len(liked))
	for _, l := range liked {
		if r.videos == nil {
			continue
		}
		v, err := r.videos.GetByID(context.Background(), l.videoID)
		if err != nil || !v.IsPublished {
			continue
		}
		out = append(out, r.videos.withOwner(v))
	}
	total := int64(len(out))
	return page(out, p), total, nil
}

func (r *fakeLikeRepo) removeTarget(target entity.LikeTarget, targetID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	suffix := "|" + string(target) + "|" + targetID
	for key := range r.edges {
		if strings.HasSuffix(key, suffix) {
			delete(r.edges, key)
		}
	}
}

// fakeSubRepo mirrors the unique (subscriber, channel) constraint.
type fakeSubRepo struct {
	mu    sync.Mutex
	edges map[string]time.Time // subscriberID|channelID
	users *fakeUserRepo
}

func newFakeSubRepo(users *fakeUserRepo) *fakeSubRepo {
	return &fakeSubRepo{edges: map[string]time.Time{}, users: users}
}

func (r *fakeSubRepo) Toggle(_ context.Context, subscriberID, channelID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := subscriberID + "|" + channelID
	if _, ok := r.edges[key]; ok {
		delete(r.edges, key)
		return false, nil
	}
	r.edges[key] = time.Now()
	return true, nil
}

func (r *fakeSubRepo) CountForChannel(_ context.Context, channelID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for key := range r.edges {
		if strings.HasSuffix(key, "|"+channelID) {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubRepo) edgesFor(matchSuffix bool, id string) []entity.SubscriptionEdge {
	type edge struct {
		far string
		at  time.Time
	}
	r.mu.Lock()
	found := make([]edge, 0)
	for key, at := range r.edges {
		parts := strings.SplitN(key, "|", 2)
		if matchSuffix && parts[1] == id {
			found = append(found, edge{far: parts[0], at: at})
		} else if !matchSuffix && parts[0] == id {
			found = append(found, edge{far: parts[1], at: at})
		}
	}
	r.mu.Unlock()
	sort.Slice(found, func(i, j int) bool { return found[i].at.After(found[j].at) })
	out := make([]entity.SubscriptionEdge, 0, len(found))
	for _, e := range found {
		se := entity.SubscriptionEdge{SubscribedAt: e.at}
		if u, err := r.users.GetByID(context.Background(), e.far); err == nil {
			se.User = u.Summary()
			se.Email = u.Email
		}
		out = append(out, se)
	}
	return out
}

func (r *fakeSubRepo) Subscribers(_ context.Context, channelID string, p pagination.Params) ([]entity.SubscriptionEdge, int64, error) {
	all := r.edgesFor(true, channelID)
	return page(all, p), int64(len(all)), nil
}

func (r *fakeSubRepo) SubscribedChannels(_ context.Context, subscriberID string, p pagination.Params) ([]entity.SubscriptionEdge, int64, error) {
	all := r.edgesFor(false, subscriberID)
	return page(all, p), int64(len(all)), nil
}

func (r *fakeSubRepo) SubscriberIDs(_ context.Context, channelID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0)
	for key := range r.edges {
		parts := strings.SplitN(key, "|", 2)
		if parts[1] == channelID {
			ids = append(ids, parts[0])
		}
	}
	return ids, nil
}

type fakePlaylistRepo struct {
	mu        sync.Mutex
	playlists map[string]*entity.Playlist
	items     map[string]map[string]time.Time // playlistID -> videoID -> addedAt
	users     *fakeUserRepo
	videos    *fakeVideoRepo
}

func newFakePlaylistRepo(users *fakeUserRepo, videos *fakeVideoRepo) *fakePlaylistRepo {
	return &fakePlaylistRepo{
		playlists: map[string]*entity.Playlist{},
		items:     map[string]map[string]time.Time{},
		users:     users,
		videos:    videos,
	}
}

func (r *fakePlaylistRepo) Create(_ context.Context, p *entity.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.playlists[p.ID] = &cp
	r.items[p.ID] = map[string]time.Time{}
	return nil
}

func (r *fakePlaylistRepo) GetByID(_ context.Context, id string) (*entity.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlaylistRepo) GetWithVideos(_ context.Context, id string) (*entity.PlaylistWithVideos, error) {
	r.mu.Lock()
	p, ok := r.playlists[id]
	if !ok {
		r.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	items := make(map[string]time.Time, len(r.items[id]))
	for vid, at := range r.items[id] {
		items[vid] = at
	}
	cp := *p
	r.mu.Unlock()

	out := &entity.PlaylistWithVideos{
		ID: cp.ID, Name: cp.Name, Description: cp.Description, IsPublic: cp.IsPublic,
		CreatedAt: cp.CreatedAt, UpdatedAt: cp.UpdatedAt,
		Videos: make([]entity.PlaylistVideo, 0, len(items)),
	}
	if u, err := r.users.GetByID(context.Background(), cp.OwnerID); err == nil {
		out.Owner = u.Summary()
	}
	for vid, at := range items {
		if v, err := r.videos.GetByID(context.Background(), vid); err == nil {
			out.Videos = append(out.Videos, entity.PlaylistVideo{
				ID: v.ID, Title: v.Title, Description: v.Description,
				ThumbnailURL: v.ThumbnailURL, Duration: v.Duration, Views: v.Views, AddedAt: at,
			})
		}
	}
	sort.Slice(out.Videos, func(i, j int) bool { return out.Videos[i].AddedAt.Before(out.Videos[j].AddedAt) })
	out.VideoCount = len(out.Videos)
	return out, nil
}

func (r *fakePlaylistRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.PlaylistWithVideos, error) {
	r.mu.Lock()
	ids := make([]string, 0)
	for id, p := range r.playlists {
		if p.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	r.mu.Unlock()
	sort.Strings(ids)
	out := make([]entity.PlaylistWithVideos, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetWithVideos(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlaylistRepo) Patch(_ context.Context, id string, patch entity.PlaylistPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok {
		return repository.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.IsPublic != nil {
		p.IsPublic = *patch.IsPublic
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakePlaylistRepo) AddVideo(_ context.Context, playlistID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, ok := r.items[playlistID]
	if !ok {
		return repository.ErrNotFound
	}
	if _, exists := items[videoID]; exists {
		return repository.ErrDuplicate
	}
	items[videoID] = time.Now()
	return nil
}

func (r *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, ok := r.items[playlistID]
	if !ok {
		return repository.ErrNotFound
	}
	if _, exists := items[videoID]; !exists {
		return repository.ErrNotFound
	}
	delete(items, videoID)
	return nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.playlists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.playlists, id)
	delete(r.items, id)
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) CreateBatch(_ context.Context, ns []entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range ns {
		n.ID = uuid.NewString()
		n.CreatedAt = time.Now()
		r.notifications = append(r.notifications, n)
	}
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			cp := n
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, p pagination.Params) ([]entity.Notification, int64, error) {
	r.mu.Lock()
	matched := make([]entity.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			matched = append(matched, n)
		}
	}
	r.mu.Unlock()
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return page(matched, p), int64(len(matched)), nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

// page applies offset/limit the way the SQL repositories do.
func page[T any](items []T, p pagination.Params) []T {
	off := p.Offset()
	if off >= len(items) {
		return []T{}
	}
	end := off + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[off:end]
}
