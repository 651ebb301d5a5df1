package models

import "gorm.io/datatypes"

// Account is a registered user. Followers and Following are embedded
// identifier lists, one on each side of the edge; both sides are written
// together but not atomically, so a one-sided edge can survive a crash.
type Account struct {
	BaseModel

	Name         string  `json:"name" validate:"required"`
	Username     string  `json:"username" gorm:"uniqueIndex" validate:"required"`
	Email        string  `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string  `json:"-"`
	Avatar       *string `json:"avatar"`
	Bio          string  `json:"bio"`

	Followers datatypes.JSONSlice[uint] `json:"followers"`
	Following datatypes.JSONSlice[uint] `json:"following"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AccountID"`
}
