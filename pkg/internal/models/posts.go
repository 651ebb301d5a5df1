package models

import "gorm.io/datatypes"

const MaxPostTextLength = 500

type Post struct {
	BaseModel

	Text  string  `json:"text" validate:"required"`
	Image *string `json:"image"`

	// Likes is a membership set of account IDs; presence means "has liked".
	Likes datatypes.JSONSlice[uint] `json:"likes"`

	// Replies live inside the post, append-only, insertion order preserved.
	Replies datatypes.JSONSlice[Reply] `json:"replies"`

	AccountID uint     `json:"account_id"`
	Account   *Account `json:"account,omitempty"`
}

// Reply carries denormalized copies of the author's username and avatar,
// captured when the reply is written and repaired afterwards by the
// denormalization sweep when the author edits their profile.
type Reply struct {
	ID           string  `json:"id"`
	AccountID    uint    `json:"account_id"`
	Text         string  `json:"text"`
	AuthorName   string  `json:"author_name"`
	AuthorAvatar *string `json:"author_avatar"`
}
