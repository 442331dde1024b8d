package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube/pkg/pagination"
)

func newSubFixture(t *testing.T) (*SubscriptionService, *fakeUserRepo, *fakeSubRepo) {
	t.Helper()
	users := newFakeUserRepo()
	subs := newFakeSubRepo(users)
	return NewSubscriptionService(subs, users), users, subs
}

func TestSubscriptionToggle(t *testing.T) {
	svc, users, _ := newSubFixture(t)
	ctx := context.Background()

	channel := users.add("creator", "creator@example.com")
	viewer := users.add("viewer", "viewer@example.com")

	res, err := svc.Toggle(ctx, viewer.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(1), res.TotalCount)
	assert.Equal(t, channel.ID, res.TargetID)

	res, err = svc.Toggle(ctx, viewer.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(0), res.TotalCount)
}

func TestSubscriptionSelfRejected(t *testing.T) {
	svc, users, _ := newSubFixture(t)
	ctx := context.Background()

	channel := users.add("creator", "creator@example.com")
	_, err := svc.Toggle(ctx, channel.ID, channel.ID)
	assert.ErrorIs(t, err, ErrSelfSubscription)
}

func TestSubscriptionUnknownChannel(t *testing.T) {
	svc, users, _ := newSubFixture(t)
	ctx := context.Background()

	viewer := users.add("viewer", "viewer@example.com")
	_, err := svc.Toggle(ctx, viewer.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Toggle(ctx, viewer.ID, "nope")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSubscriberListings(t *testing.T) {
	svc, users, _ := newSubFixture(t)
	ctx := context.Background()

	channel := users.add("creator", "creator@example.com")
	a := users.add("alice", "alice@example.com")
	b := users.add("bob", "bob@example.com")

	_, err := svc.Toggle(ctx, a.ID, channel.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, b.ID, channel.ID)
	require.NoError(t, err)

	edges, meta, err := svc.Subscribers(ctx, channel.ID, pagination.New(1, 10, 10))
	require.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, int64(2), meta.TotalCount)
	assert.False(t, meta.HasMore)

	// Page size 1 splits the set into two pages.
	edges, meta, err = svc.Subscribers(ctx, channel.ID, pagination.New(1, 1, 10))
	require.NoError(t, err)
	assert.Len(t, edges, 1)
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasMore)

	channels, meta, err := svc.SubscribedChannels(ctx, a.ID, pagination.New(1, 10, 10))
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, channel.ID, channels[0].User.ID)
	assert.Equal(t, int64(1), meta.TotalCount)
}
