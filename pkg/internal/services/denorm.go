package services

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/strandworks/strand/pkg/internal/database"
	"github.com/strandworks/strand/pkg/internal/models"
	"gorm.io/gorm"
)

// SyncReplyAuthor rewrites the denormalized username and avatar copies in
// every already-embedded reply authored by the account. Replies written
// after this runs pick up the new values on their own, so the scan only has
// to fix what is already stored. Best effort: a reply written concurrently
// with the scan may keep a stale copy until the next sweep.
func SyncReplyAuthor(accountID uint, name string, avatar *string) error {
	var items []models.Post
	result := database.C.
		Where("replies IS NOT NULL").
		FindInBatches(&items, 100, func(tx *gorm.DB, _ int) error {
			for _, item := range items {
				var dirty bool
				for idx, reply := range item.Replies {
					if reply.AccountID != accountID {
						continue
					}
					if reply.AuthorName == name && equalAvatar(reply.AuthorAvatar, avatar) {
						continue
					}
					item.Replies[idx].AuthorName = name
					item.Replies[idx].AuthorAvatar = avatar
					dirty = true
				}
				if dirty {
					if err := tx.Model(&item).Update("replies", item.Replies).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})

	return result.Error
}

var lastDenormSweep = time.Now()

// RunDenormMaintenance re-syncs reply author copies for accounts whose
// profiles changed since the previous sweep. It backs up the synchronous
// fixup in UpdateAccountProfile in case that fixup was interrupted.
func RunDenormMaintenance() {
	checkpoint := time.Now()

	var accounts []models.Account
	if err := database.C.
		Where("updated_at >= ?", lastDenormSweep).
		Find(&accounts).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when listing recently updated accounts...")
		return
	}

	for _, account := range accounts {
		if err := SyncReplyAuthor(account.ID, account.Username, account.Avatar); err != nil {
			log.Error().Err(err).Uint("account", account.ID).Msg("An error occurred when re-syncing reply author fields...")
			return
		}
	}

	lastDenormSweep = checkpoint
	if len(accounts) > 0 {
		log.Debug().Int("accounts", len(accounts)).Msg("Reply author denormalization sweep finished.")
	}
}
