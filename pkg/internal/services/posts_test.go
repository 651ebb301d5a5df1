package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strandworks/strand/pkg/internal/database"
	"github.com/strandworks/strand/pkg/internal/models"
)

func TestNewPostValidation(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")

	_, err := NewPost(alice.ID, models.Post{Text: "", AccountID: alice.ID})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPost(alice.ID, models.Post{Text: strings.Repeat("x", 501), AccountID: alice.ID})
	assert.ErrorIs(t, err, ErrValidation)

	item, err := NewPost(alice.ID, models.Post{Text: strings.Repeat("x", 500), AccountID: alice.ID})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
}

func TestNewPostActorMismatch(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	bob := mustCreateAccount(t, "bob")

	_, err := NewPost(alice.ID, models.Post{Text: "impostor", AccountID: bob.ID})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNewPostMissingAuthor(t *testing.T) {
	useTestDB(t)

	_, err := NewPost(7, models.Post{Text: "orphan", AccountID: 7})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLikeSetSemantics(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	bob := mustCreateAccount(t, "bob")
	item := mustCreatePost(t, bob.ID, "hello world")

	// Odd number of calls leaves exactly one membership, even leaves none
	for i := 0; i < 5; i++ {
		liked, err := ToggleLike(item.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 0, liked)
	}

	got, err := GetPost(item.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{alice.ID}, []uint(got.Likes))

	_, err = ToggleLike(item.ID, alice.ID)
	require.NoError(t, err)

	got, err = GetPost(item.ID)
	require.NoError(t, err)
	assert.Empty(t, []uint(got.Likes))
}

func TestToggleLikeMissingPost(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	_, err := ToggleLike(404, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendReplyCapturesCurrentProfile(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	bob := mustCreateAccount(t, "bob")
	item := mustCreatePost(t, bob.ID, "hello world")

	_, err := AppendReply(item.ID, alice.ID, "hi")
	require.NoError(t, err)

	got, err := GetPost(item.ID)
	require.NoError(t, err)
	require.Len(t, []models.Reply(got.Replies), 1)
	assert.Equal(t, "alice", got.Replies[0].AuthorName)
	assert.Equal(t, "hi", got.Replies[0].Text)
	assert.NotEmpty(t, got.Replies[0].ID)

	// After a rename, new replies carry the new values on their own
	_, err = UpdateAccountProfile(alice.ID, AccountPatch{Username: "alice2"})
	require.NoError(t, err)

	got, err = AppendReply(item.ID, alice.ID, "hi again")
	require.NoError(t, err)
	require.Len(t, []models.Reply(got.Replies), 2)
	assert.Equal(t, "alice2", got.Replies[1].AuthorName)
}

func TestAppendReplyValidation(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	item := mustCreatePost(t, alice.ID, "hello")

	_, err := AppendReply(item.ID, alice.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AppendReply(404, alice.ID, "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePostOwnership(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")
	bob := mustCreateAccount(t, "bob")
	item := mustCreatePost(t, bob.ID, "hello world")

	err := DeletePost(item.ID, alice.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, DeletePost(item.ID, bob.ID))

	_, err = GetPost(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = DeletePost(item.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPostWithAuthorsOrdering(t *testing.T) {
	useTestDB(t)

	alice := mustCreateAccount(t, "alice")

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := models.Post{Text: "first", AccountID: alice.ID}
	older.CreatedAt = stamp
	newer := models.Post{Text: "second", AccountID: alice.ID}
	newer.CreatedAt = stamp
	require.NoError(t, database.C.Create(&older).Error)
	require.NoError(t, database.C.Create(&newer).Error)

	latest := models.Post{Text: "third", AccountID: alice.ID}
	latest.CreatedAt = stamp.Add(time.Minute)
	require.NoError(t, database.C.Create(&latest).Error)

	items, err := ListPostWithAuthors([]uint{alice.ID})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Newest timestamp first; identical timestamps break by newest insert
	assert.Equal(t, "third", items[0].Text)
	assert.Equal(t, "second", items[1].Text)
	assert.Equal(t, "first", items[2].Text)
}
