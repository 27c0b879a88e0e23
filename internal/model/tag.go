package model

import "time"

// Tag rows are owned by a single post; names are not unique and duplicates
// produced by normalization are stored as-is.
type Tag struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null;index:idx_tag_name" json:"name"`
	PostID    uint64 `gorm:"not null;index:idx_tag_post" json:"post_id"`
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}
