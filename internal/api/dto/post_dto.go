package dto

import "time"

// CreatePostForm is bound from the multipart form of the create endpoint;
// the thumbnail file rides alongside under the "file" field.
type CreatePostForm struct {
	Title       string `form:"title" validate:"required,min=10,max=255"`
	Description string `form:"description" validate:"required"`
	Content     string `form:"content" validate:"required"`
	Status      string `form:"status" validate:"omitempty,oneof=published draft"`
	Tags        string `form:"tags"`
}

// UpdatePostDTO carries a partial post edit. Nil fields keep their current
// value; a non-nil Tags string replaces the whole tag set.
type UpdatePostDTO struct {
	Title       *string `json:"title" validate:"omitempty,min=10,max=255"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Status      *string `json:"status" validate:"omitempty,oneof=published draft"`
	Tags        *string `json:"tags"`
}

type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ImageDTO struct {
	ID       uint64 `json:"id"`
	Filename string `json:"filename"`
}

type PostAuthorDTO struct {
	ID       uint64 `json:"id"`
	Nickname string `json:"nickname"`
}

type PostDTO struct {
	ID          uint64        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	Slug        string        `json:"slug"`
	Poster      string        `json:"poster"`
	Status      string        `json:"status"`
	Author      PostAuthorDTO `json:"author"`
	Tags        []TagDTO      `json:"tags"`
	Images      []ImageDTO    `json:"images"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type PostListDTO struct {
	Data  []*PostDTO `json:"data"`
	Count int64      `json:"count"`
}
