package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube/pkg/pagination"
)

func newTweetFixture(t *testing.T) (*TweetService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	tweets := newFakeTweetRepo(users)
	return NewTweetService(tweets, users), users
}

func TestTweetLifecycle(t *testing.T) {
	svc, users := newTweetFixture(t)
	ctx := context.Background()

	author := users.add("author", "author@example.com")
	stranger := users.add("stranger", "stranger@example.com")

	tw, err := svc.Create(ctx, author.ID, "  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", tw.Content)
	assert.Equal(t, author.ID, tw.Owner.ID)

	_, err = svc.Create(ctx, author.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Update(ctx, tw.ID, stranger.ID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, tw.ID, author.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	assert.ErrorIs(t, svc.Delete(ctx, tw.ID, stranger.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, tw.ID, author.ID))
	assert.ErrorIs(t, svc.Delete(ctx, tw.ID, author.ID), ErrNotFound)
}

func TestTweetListByUser(t *testing.T) {
	svc, users := newTweetFixture(t)
	ctx := context.Background()

	author := users.add("author", "author@example.com")
	other := users.add("other", "other@example.com")

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, author.ID, "post")
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, other.ID, "unrelated")
	require.NoError(t, err)

	tweets, meta, err := svc.ListByUser(ctx, author.ID, pagination.New(1, 10, 10))
	require.NoError(t, err)
	assert.Len(t, tweets, 3)
	assert.Equal(t, int64(3), meta.TotalCount)

	_, _, err = svc.ListByUser(ctx, uuid.NewString(), pagination.New(1, 10, 10))
	assert.ErrorIs(t, err, ErrNotFound)
}
