package models

import (
	"time"
)

// User mirrors the profile held by the external identity provider. Rows are
// upserted from the provider's session payload; every other entity references
// a user id from this table.
type User struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	Email           string    `gorm:"size:255;uniqueIndex" json:"email"`
	FirstName       string    `gorm:"size:255" json:"firstName"`
	LastName        string    `gorm:"size:255" json:"lastName"`
	ProfileImageURL string    `gorm:"size:512" json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
