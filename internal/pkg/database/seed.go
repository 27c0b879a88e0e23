package database

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/security"
	"errors"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Seed creates the built-in roles and the first superuser account on an
// empty database. It is idempotent and safe to run on every start.
func Seed(db *gorm.DB, cfg *config.Config) error {
	adminRole := &model.Role{}
	err := db.Where("name = ?", consts.RoleAdmin).First(adminRole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		for _, name := range []string{consts.RoleAdmin, consts.RoleModerator, consts.RoleUser, consts.RoleAuthor} {
			desc := fmt.Sprintf("Role for %s", name)
			role := &model.Role{Name: name, Description: &desc}
			if err := db.Create(role).Error; err != nil {
				return err
			}
			if name == consts.RoleAdmin {
				adminRole = role
			}
		}
		log.Info("seeded built-in roles")
	} else if err != nil {
		return err
	}

	if cfg.Bootstrap.SuperuserEmail == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", cfg.Bootstrap.SuperuserEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := security.HashPassword(cfg.Bootstrap.SuperuserPassword)
	if err != nil {
		return err
	}
	superuser := &model.User{
		Email:          cfg.Bootstrap.SuperuserEmail,
		Nickname:       "admin",
		HashedPassword: hashed,
		IsActive:       true,
		IsSuperuser:    true,
		Gender:         consts.GenderOther,
		RoleID:         adminRole.ID,
	}
	if err := db.Create(superuser).Error; err != nil {
		return err
	}
	log.Info("seeded first superuser", "email", cfg.Bootstrap.SuperuserEmail)
	return nil
}
