package model

import "time"

type Image struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Filename  string `gorm:"type:varchar(512);not null" json:"filename"`
	PostID    uint64 `gorm:"not null;index:idx_image_post" json:"post_id"`
	CreatedAt time.Time
}

func (Image) TableName() string {
	return "post_images"
}
