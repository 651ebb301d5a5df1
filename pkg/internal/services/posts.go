package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/strandworks/strand/pkg/internal/database"
	"github.com/strandworks/strand/pkg/internal/models"
	"gorm.io/gorm"
)

// NewPost publishes a post on behalf of actorID. The author recorded on the
// item must be the actor; the transport layer maps the Forbidden signal to
// its status code.
func NewPost(actorID uint, item models.Post) (models.Post, error) {
	if len(item.Text) == 0 {
		return item, fmt.Errorf("post text is required: %w", ErrValidation)
	}
	if len([]rune(item.Text)) > models.MaxPostTextLength {
		return item, fmt.Errorf("post text must be less than %d characters: %w", models.MaxPostTextLength, ErrValidation)
	}
	if item.AccountID != actorID {
		return item, fmt.Errorf("cannot post as someone else: %w", ErrForbidden)
	}

	if _, err := GetAccount(item.AccountID); err != nil {
		return item, err
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("id", item.ID).Uint("author", item.AccountID).Msg("Post published.")
	return item, nil
}

func GetPost(id uint) (models.Post, error) {
	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fmt.Errorf("post #%d: %w", id, ErrNotFound)
		}
		return item, err
	}
	return item, nil
}

// DeletePost removes the post for good. Only the author may delete; deletion
// takes the embedded replies with it.
func DeletePost(id, actorID uint) error {
	item, err := GetPost(id)
	if err != nil {
		return err
	}
	if item.AccountID != actorID {
		return fmt.Errorf("only the author can delete a post: %w", ErrForbidden)
	}

	return database.C.Unscoped().Delete(&item).Error
}

// ToggleLike flips actorID's membership in the post's like set and reports
// the state after the flip. Set membership is what guards against double
// counting; the read-then-write pair itself is not locked, same as the other
// toggles in this store.
func ToggleLike(postID, actorID uint) (bool, error) {
	item, err := GetPost(postID)
	if err != nil {
		return false, err
	}
	if _, err := GetAccount(actorID); err != nil {
		return false, err
	}

	liked := lo.Contains(item.Likes, actorID)
	if liked {
		item.Likes = lo.Filter(item.Likes, func(id uint, _ int) bool {
			return id != actorID
		})
	} else {
		item.Likes = append(item.Likes, actorID)
	}

	if err := database.C.Model(&item).Update("likes", item.Likes).Error; err != nil {
		return liked, fmt.Errorf("unable to update like set: %v", err)
	}

	return !liked, nil
}

// AppendReply appends a reply to the post, capturing the author's username
// and avatar as they are right now. The copies go stale when the author
// edits their profile and are repaired by the denormalization sweep.
func AppendReply(postID, authorID uint, text string) (models.Post, error) {
	var item models.Post
	if len(text) == 0 {
		return item, fmt.Errorf("reply text is required: %w", ErrValidation)
	}

	item, err := GetPost(postID)
	if err != nil {
		return item, err
	}
	author, err := GetAccount(authorID)
	if err != nil {
		return item, err
	}

	reply := models.Reply{
		ID:           uuid.NewString(),
		AccountID:    author.ID,
		Text:         text,
		AuthorName:   author.Username,
		AuthorAvatar: author.Avatar,
	}
	item.Replies = append(item.Replies, reply)

	if err := database.C.Model(&item).Update("replies", item.Replies).Error; err != nil {
		return item, fmt.Errorf("unable to append reply: %v", err)
	}

	return item, nil
}

// ListPostWithAuthors returns posts by any of the given authors, newest
// first. Identical timestamps fall back to descending ID so that repeated
// calls see the same total order.
func ListPostWithAuthors(authorIDs []uint) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}

	var items []models.Post
	if err := database.C.
		Where("account_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// ListPostWithAuthor is the single-author profile timeline.
func ListPostWithAuthor(authorID uint) ([]models.Post, error) {
	if _, err := GetAccount(authorID); err != nil {
		return nil, err
	}
	return ListPostWithAuthors([]uint{authorID})
}
