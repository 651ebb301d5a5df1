package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strandworks/strand/pkg/internal/database"
	"github.com/strandworks/strand/pkg/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int

// useTestDB points database.C at a fresh in-memory database for the test.
func useTestDB(t *testing.T) {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	database.C = db
}

func mustCreateAccount(t *testing.T, username string) models.Account {
	t.Helper()

	account, err := CreateAccount(username, username, username+"@example.com", "$2a$10$notarealhash")
	require.NoError(t, err)
	return account
}

func mustCreatePost(t *testing.T, authorID uint, text string) models.Post {
	t.Helper()

	item, err := NewPost(authorID, models.Post{Text: text, AccountID: authorID})
	require.NoError(t, err)
	return item
}
