package model

import (
	"time"
)

type Post struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	AuthorID    uint64 `gorm:"not null;index:idx_post_author" json:"author_id"`
	Title       string `gorm:"type:varchar(255);not null;uniqueIndex:idx_post_title" json:"title"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	Content     string `gorm:"type:text" json:"content"`
	// Slug is indexed but deliberately not unique; only the title is.
	Slug      string    `gorm:"type:varchar(255);index:idx_post_slug" json:"slug"`
	Poster    string    `gorm:"type:varchar(512)" json:"poster"`
	Status    string    `gorm:"type:varchar(16);not null;default:'draft'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author User    `gorm:"foreignKey:AuthorID;references:ID"`
	Tags   []Tag   `gorm:"foreignKey:PostID;references:ID"`
	Images []Image `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
