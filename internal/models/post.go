package models

// Post represents a piece of content authored by exactly one Account.
type Post struct {
	ID      uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title   string   `gorm:"not null" json:"title"`
	Content string   `gorm:"type:text" json:"content"`
	OwnerID uint     `gorm:"not null;index" json:"owner_id"`
	Owner   *Account `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// TableName pins the table to "posts".
func (Post) TableName() string {
	return "posts"
}

// OwnerPlaceholder is shown in listings when a post's owner cannot be resolved.
const OwnerPlaceholder = "N/A"

// OwnerName returns the owning account's name, or OwnerPlaceholder when the
// owner was not loaded or no longer exists.
func (p Post) OwnerName() string {
	if p.Owner == nil || p.Owner.Name == "" {
		return OwnerPlaceholder
	}
	return p.Owner.Name
}
