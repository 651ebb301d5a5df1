package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/strandworks/strand/pkg/internal/database"
	"github.com/strandworks/strand/pkg/internal/models"
	"gorm.io/gorm"
)

// CreateAccount registers a new account. Uniqueness of username and email is
// checked with a single OR query before the insert; the small race window
// between check and insert is accepted.
func CreateAccount(name, username, email, passwordHash string) (models.Account, error) {
	var account models.Account

	var count int64
	if err := database.C.Model(&models.Account{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to check account existence: %v", err)
	}
	if count > 0 {
		return account, fmt.Errorf("username or email already taken: %w", ErrConflict)
	}

	account = models.Account{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("account #%d: %w", id, ErrNotFound)
		}
		return account, err
	}
	return account, nil
}

func GetAccountWithUsername(username string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("account %s: %w", username, ErrNotFound)
		}
		return account, err
	}
	return account, nil
}

// GetAccountWithQuery resolves a profile query that is either a numeric
// account ID or a username. Numbers are tried as IDs first.
func GetAccountWithQuery(query string) (models.Account, error) {
	if id, err := strconv.Atoi(query); err == nil {
		return GetAccount(uint(id))
	}
	return GetAccountWithUsername(query)
}

// AccountPatch is a partial profile update. Empty fields are left untouched,
// matching the submit-the-whole-form client contract: a blank value never
// clears what is stored.
type AccountPatch struct {
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Avatar       string
	Bio          string
}

// UpdateAccountProfile applies a last-non-empty-wins merge onto the account.
// Username and email uniqueness is not re-checked here, same as on the
// observed behavior of the upstream API.
func UpdateAccountProfile(id uint, patch AccountPatch) (models.Account, error) {
	account, err := GetAccount(id)
	if err != nil {
		return account, err
	}

	prevUsername := account.Username
	prevAvatar := account.Avatar

	if len(patch.Name) > 0 {
		account.Name = patch.Name
	}
	if len(patch.Username) > 0 {
		account.Username = patch.Username
	}
	if len(patch.Email) > 0 {
		account.Email = patch.Email
	}
	if len(patch.PasswordHash) > 0 {
		account.PasswordHash = patch.PasswordHash
	}
	if len(patch.Avatar) > 0 {
		account.Avatar = &patch.Avatar
	}
	if len(patch.Bio) > 0 {
		account.Bio = patch.Bio
	}

	if err := database.C.Save(&account).Error; err != nil {
		return account, err
	}

	// Repair the denormalized author copies embedded in replies
	if account.Username != prevUsername || !equalAvatar(account.Avatar, prevAvatar) {
		if err := SyncReplyAuthor(account.ID, account.Username, account.Avatar); err != nil {
			return account, fmt.Errorf("unable to sync reply author fields: %v", err)
		}
	}

	return account, nil
}

func equalAvatar(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
