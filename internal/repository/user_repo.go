package repository

import (
	"Inkstone/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByNickname(ctx context.Context, nickname string) (*model.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]*model.User, int64, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Role").
		First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByNickname(ctx context.Context, nickname string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("nickname = ?", nickname).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) ListUsers(ctx context.Context, skip, limit int) ([]*model.User, int64, error) {
	var count int64
	if result := s.db.WithContext(ctx).Model(&model.User{}).Count(&count); result.Error != nil {
		return nil, 0, result.Error
	}

	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Preload("Role").
		Offset(skip).
		Limit(limit).
		Order("id").
		Find(&users)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return users, count, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	// Save writes the full row; callers mutate a freshly loaded model so
	// unsupplied fields keep their current values.
	return s.db.WithContext(ctx).Omit("Role", "Posts").Save(user).Error
}

// DeleteUser removes the user and everything it owns: its posts, and the
// tags and image rows of those posts, all in one transaction.
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint64
		if err := tx.Model(&model.Post{}).Where("author_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Tag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Image{}).Error; err != nil {
				return err
			}
			if err := tx.Where("author_id = ?", id).Delete(&model.Post{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.User{}, id).Error
	})
}
