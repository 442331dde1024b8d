package application

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
)

func newLikeFixture(t *testing.T) (*LikeService, *fakeUserRepo, *fakeVideoRepo, *fakeCommentRepo, *fakeTweetRepo, *fakeLikeRepo) {
	t.Helper()
	users := newFakeUserRepo()
	videos := newFakeVideoRepo(users)
	comments := newFakeCommentRepo(users)
	tweets := newFakeTweetRepo(users)
	likes := newFakeLikeRepo()
	likes.videos = videos
	videos.likes = likes
	videos.comments = comments
	return NewLikeService(likes, videos, comments, tweets), users, videos, comments, tweets, likes
}

func TestToggleVideoLike(t *testing.T) {
	svc, users, videos, _, _, _ := newLikeFixture(t)
	ctx := context.Background()

	owner := users.add("creator", "creator@example.com")
	viewer := users.add("viewer", "viewer@example.com")
	v := &entity.Video{OwnerID: owner.ID, Title: "first", VideoURL: "u", IsPublished: true}
	require.NoError(t, videos.Create(ctx, v))

	res, err := svc.ToggleVideoLike(ctx, viewer.ID, v.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(1), res.TotalCount)
	assert.Equal(t, v.ID, res.TargetID)

	res, err = svc.ToggleVideoLike(ctx, viewer.ID, v.ID)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(0), res.TotalCount)
}

func TestToggleLikeCountsPerTarget(t *testing.T) {
	svc, users, videos, comments, _, _ := newLikeFixture(t)
	ctx := context.Background()

	owner := users.add("creator", "creator@example.com")
	a := users.add("alice", "alice@example.com")
	b := users.add("bob", "bob@example.com")
	v := &entity.Video{OwnerID: owner.ID, Title: "first", VideoURL: "u", IsPublished: true}
	require.NoError(t, videos.Create(ctx, v))
	c := &entity.Comment{VideoID: v.ID, OwnerID: owner.ID, Content: "hi"}
	require.NoError(t, comments.Create(ctx, c))

	_, err := svc.ToggleVideoLike(ctx, a.ID, v.ID)
	require.NoError(t, err)
	res, err := svc.ToggleVideoLike(ctx, b.ID, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalCount)

	// Comment likes are counted independently of video likes.
	res, err = svc.ToggleCommentLike(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(1), res.TotalCount)
}

func TestToggleLikeUnknownTarget(t *testing.T) {
	svc, users, _, _, _, _ := newLikeFixture(t)
	ctx := context.Background()
	viewer := users.add("viewer", "viewer@example.com")

	_, err := svc.ToggleVideoLike(ctx, viewer.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleTweetLike(ctx, viewer.ID, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToggleLikeConcurrent(t *testing.T) {
	svc, users, videos, _, _, likes := newLikeFixture(t)
	ctx := context.Background()

	owner := users.add("creator", "creator@example.com")
	viewer := users.add("viewer", "viewer@example.com")
	v := &entity.Video{OwnerID: owner.ID, Title: "first", VideoURL: "u", IsPublished: true}
	require.NoError(t, videos.Create(ctx, v))

	// An odd number of strictly alternating toggles must end liked, with
	// exactly one edge: never two rows for the same (user, video).
	const n = 101
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.ToggleVideoLike(ctx, viewer.ID, v.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	total, err := likes.Count(ctx, entity.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestLikedVideosExcludesUnpublished(t *testing.T) {
	svc, users, videos, _, _, _ := newLikeFixture(t)
	ctx := context.Background()

	owner := users.add("creator", "creator@example.com")
	viewer := users.add("viewer", "viewer@example.com")

	pub := &entity.Video{OwnerID: owner.ID, Title: "live", VideoURL: "u", IsPublished: true}
	draft := &entity.Video{OwnerID: owner.ID, Title: "draft", VideoURL: "u", IsPublished: false}
	require.NoError(t, videos.Create(ctx, pub))
	require.NoError(t, videos.Create(ctx, draft))

	_, err := svc.ToggleVideoLike(ctx, viewer.ID, pub.ID)
	require.NoError(t, err)
	_, err = svc.ToggleVideoLike(ctx, viewer.ID, draft.ID)
	require.NoError(t, err)

	got, meta, err := svc.LikedVideos(ctx, viewer.ID, pagination.New(1, 10, 10))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pub.ID, got[0].ID)
	assert.Equal(t, int64(1), meta.TotalCount)
}
