package services

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strandworks/strand/pkg/internal/models"
)

func TestGetFeedComposition(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	bob := mustCreateAccount(t, "bob")
	carol := mustCreateAccount(t, "carol")
	dave := mustCreateAccount(t, "dave")

	mustCreatePost(t, bob.ID, "from bob")
	mustCreatePost(t, carol.ID, "from carol")
	mustCreatePost(t, dave.ID, "from dave")

	_, err := ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = ToggleFollow(alice.ID, carol.ID)
	require.NoError(t, err)

	items, err := GetFeed(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	authors := lo.Map(items, func(item models.Post, _ int) uint {
		return item.AccountID
	})
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, authors)
}

func TestGetFeedEmptyFollowing(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	bob := mustCreateAccount(t, "bob")
	mustCreatePost(t, bob.ID, "unseen")

	items, err := GetFeed(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetFeedMissingAccount(t *testing.T) {
	useTestDB(t)

	_, err := GetFeed(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedEndToEnd(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	bob := mustCreateAccount(t, "bob")

	following, err := ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, following)

	mustCreatePost(t, bob.ID, "hello world")

	items, err := GetFeed(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hello world", items[0].Text)
	assert.Equal(t, bob.ID, items[0].AccountID)

	// Unfollowing empties the feed again
	following, err = ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, following)

	items, err = GetFeed(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
