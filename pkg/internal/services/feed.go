package services

import "github.com/strandworks/strand/pkg/internal/models"

// GetFeed assembles the reverse-chronological feed for the account: every
// post whose author is in the account's following list. Following nobody
// yields an empty feed, not an error.
func GetFeed(accountID uint) ([]models.Post, error) {
	account, err := GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	return ListPostWithAuthors(account.Following)
}
