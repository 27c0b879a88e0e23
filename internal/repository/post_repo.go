package repository

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByTitle(ctx context.Context, title string) (*model.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	ListAllPosts(ctx context.Context, skip, limit int) ([]*model.Post, int64, error)
	ListPublishedPosts(ctx context.Context, skip, limit int) ([]*model.Post, int64, error)
	ListPostsByAuthor(ctx context.Context, authorID uint64, includeDrafts bool, skip, limit int) ([]*model.Post, int64, error)
	ListPostsByTag(ctx context.Context, tag string, viewerID uint64, includeAll bool, skip, limit int) ([]*model.Post, int64, error)
	CreatePost(ctx context.Context, post *model.Post, tags []string, image *model.Image) error
	UpdatePost(ctx context.Context, post *model.Post, tags []string) error
	DeletePost(ctx context.Context, id uint64) error
	ListImageFilenames(ctx context.Context) ([]string, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) getPostBy(ctx context.Context, query string, arg any) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Images").
		Where(query, arg).
		First(post)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	return s.getPostBy(ctx, "posts.id = ?", id)
}

func (s *PostRepoImpl) GetPostByTitle(ctx context.Context, title string) (*model.Post, error) {
	return s.getPostBy(ctx, "title = ?", title)
}

func (s *PostRepoImpl) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	// The slug column is not unique; mirror "first match wins".
	return s.getPostBy(ctx, "slug = ?", slug)
}

func (s *PostRepoImpl) listPosts(ctx context.Context, where func(*gorm.DB) *gorm.DB, skip, limit int) ([]*model.Post, int64, error) {
	var count int64
	if result := where(s.db.WithContext(ctx).Model(&model.Post{})).Count(&count); result.Error != nil {
		return nil, 0, result.Error
	}

	posts := make([]*model.Post, 0)
	result := where(s.db.WithContext(ctx).Model(&model.Post{})).
		Preload("Author").
		Preload("Tags").
		Preload("Images").
		Offset(skip).
		Limit(limit).
		Order("posts.id DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return posts, count, nil
}

func (s *PostRepoImpl) ListAllPosts(ctx context.Context, skip, limit int) ([]*model.Post, int64, error) {
	return s.listPosts(ctx, func(db *gorm.DB) *gorm.DB { return db }, skip, limit)
}

func (s *PostRepoImpl) ListPublishedPosts(ctx context.Context, skip, limit int) ([]*model.Post, int64, error) {
	return s.listPosts(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", consts.PostStatusPublished)
	}, skip, limit)
}

func (s *PostRepoImpl) ListPostsByAuthor(ctx context.Context, authorID uint64, includeDrafts bool, skip, limit int) ([]*model.Post, int64, error) {
	return s.listPosts(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("author_id = ?", authorID)
		if !includeDrafts {
			db = db.Where("status = ?", consts.PostStatusPublished)
		}
		return db
	}, skip, limit)
}

func (s *PostRepoImpl) ListPostsByTag(ctx context.Context, tag string, viewerID uint64, includeAll bool, skip, limit int) ([]*model.Post, int64, error) {
	// subquery instead of a join: a post tagged twice with the same name must
	// still list once
	tagged := s.db.Model(&model.Tag{}).Select("post_id").Where("name = ?", tag)

	return s.listPosts(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("posts.id IN (?)", tagged)
		if !includeAll {
			if viewerID > 0 {
				db = db.Where("status = ? OR author_id = ?", consts.PostStatusPublished, viewerID)
			} else {
				db = db.Where("status = ?", consts.PostStatusPublished)
			}
		}
		return db
	}, skip, limit)
}

// CreatePost inserts the post together with its tag rows and the uploaded
// image record in one transaction.
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tags []string, image *model.Image) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}

		for _, name := range tags {
			if err := tx.Create(&model.Tag{Name: name, PostID: post.ID}).Error; err != nil {
				return err
			}
		}

		if image != nil {
			image.PostID = post.ID
			if err := tx.Create(image).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdatePost saves the post row; a non-nil tags slice replaces the current
// tag set, nil leaves it untouched.
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, tags []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Tags", "Images").Save(post).Error; err != nil {
			return err
		}

		if tags == nil {
			return nil
		}

		if err := tx.Where("post_id = ?", post.ID).Delete(&model.Tag{}).Error; err != nil {
			return err
		}
		for _, name := range tags {
			if err := tx.Create(&model.Tag{Name: name, PostID: post.ID}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Tag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (s *PostRepoImpl) ListImageFilenames(ctx context.Context) ([]string, error) {
	var filenames []string
	result := s.db.WithContext(ctx).
		Model(&model.Image{}).
		Pluck("filename", &filenames)
	if result.Error != nil {
		return nil, result.Error
	}
	return filenames, nil
}
