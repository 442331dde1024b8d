package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube/internal/domain/entity"
)

func newPlaylistFixture(t *testing.T) (*PlaylistService, *fakeUserRepo, *fakeVideoRepo) {
	t.Helper()
	users := newFakeUserRepo()
	videos := newFakeVideoRepo(users)
	playlists := newFakePlaylistRepo(users, videos)
	return NewPlaylistService(playlists, videos), users, videos
}

func TestPlaylistCreateValidation(t *testing.T) {
	svc, users, _ := newPlaylistFixture(t)
	ctx := context.Background()
	owner := users.add("creator", "creator@example.com")

	_, err := svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: "ab"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: strings.Repeat("x", 51)})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: "ok name", Description: strings.Repeat("d", 201)})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	p, err := svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: "  watch later  "})
	require.NoError(t, err)
	assert.Equal(t, "watch later", p.Name)
	assert.True(t, p.IsPublic) // default
}

func TestPlaylistVisibility(t *testing.T) {
	svc, users, _ := newPlaylistFixture(t)
	ctx := context.Background()

	owner := users.add("creator", "creator@example.com")
	stranger := users.add("stranger", "stranger@example.com")

	no := false
	private, err := svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: "secret", IsPublic: &no})
	require.NoError(t, err)
	public, err := svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: "open"})
	require.NoError(t, err)

	// Owner sees both, a stranger and a guest only the public one.
	mine, err := svc.ListByUser(ctx, owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.ListByUser(ctx, owner.ID, stranger.ID)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, public.ID, theirs[0].ID)

	guest, err := svc.ListByUser(ctx, owner.ID, "")
	require.NoError(t, err)
	assert.Len(t, guest, 1)

	// A private playlist reads as not-found for anyone but the owner.
	_, err = svc.Get(ctx, private.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := svc.Get(ctx, private.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, private.ID, got.ID)
}

func TestPlaylistAddRemoveVideo(t *testing.T) {
	svc, users, videos := newPlaylistFixture(t)
	ctx := context.Background()

	owner := users.add("creator", "creator@example.com")
	stranger := users.add("stranger", "stranger@example.com")
	v := &entity.Video{OwnerID: owner.ID, Title: "first", VideoURL: "u", IsPublished: true}
	require.NoError(t, videos.Create(ctx, v))

	p, err := svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: "favs"})
	require.NoError(t, err)

	got, err := svc.AddVideo(ctx, p.ID, v.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.VideoCount)

	_, err = svc.AddVideo(ctx, p.ID, v.ID, owner.ID)
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.AddVideo(ctx, p.ID, v.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err = svc.RemoveVideo(ctx, p.ID, v.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.VideoCount)

	_, err = svc.RemoveVideo(ctx, p.ID, v.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaylistPartialUpdate(t *testing.T) {
	svc, users, _ := newPlaylistFixture(t)
	ctx := context.Background()
	owner := users.add("creator", "creator@example.com")

	p, err := svc.Create(ctx, owner.ID, CreatePlaylistInput{Name: "favs", Description: "old words"})
	require.NoError(t, err)

	// Only the description changes; an explicit empty string clears it.
	empty := ""
	got, err := svc.Update(ctx, p.ID, owner.ID, entity.PlaylistPatch{Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "favs", got.Name)
	assert.Equal(t, "", got.Description)

	short := "ab"
	_, err = svc.Update(ctx, p.ID, owner.ID, entity.PlaylistPatch{Name: &short})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
