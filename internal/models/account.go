// Package models contains data structures for the application's domain models.
package models

// Account represents a registered user. Names and emails are unique across all accounts.
type Account struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"uniqueIndex;not null" json:"name"`
	Email  string `gorm:"uniqueIndex;not null" json:"email"`
	Secret string `gorm:"not null" json:"-"`
	Posts  []Post `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// TableName pins the table to "accounts".
func (Account) TableName() string {
	return "accounts"
}
