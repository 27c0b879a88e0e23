package repository

import (
	"Inkstone/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type RoleRepo interface {
	GetRoleByName(ctx context.Context, name string) (*model.Role, error)
	ListRoles(ctx context.Context, skip, limit int) ([]*model.Role, int64, error)
	CreateRole(ctx context.Context, role *model.Role) error
}

type RoleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &RoleRepoImpl{db: db}
}

func (s *RoleRepoImpl) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	role := &model.Role{}
	result := s.db.WithContext(ctx).Where("name = ?", name).First(role)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return role, nil
}

func (s *RoleRepoImpl) ListRoles(ctx context.Context, skip, limit int) ([]*model.Role, int64, error) {
	var count int64
	if result := s.db.WithContext(ctx).Model(&model.Role{}).Count(&count); result.Error != nil {
		return nil, 0, result.Error
	}

	roles := make([]*model.Role, 0)
	result := s.db.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Order("id").
		Find(&roles)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return roles, count, nil
}

func (s *RoleRepoImpl) CreateRole(ctx context.Context, role *model.Role) error {
	return s.db.WithContext(ctx).Create(role).Error
}
