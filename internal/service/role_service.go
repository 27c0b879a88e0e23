package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
)

type RoleService struct {
	roleRepo repository.RoleRepo
}

func NewRoleService(roleRepo repository.RoleRepo) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

func (s *RoleService) ListRoles(ctx context.Context, skip, limit int) (*dto.RoleListDTO, error) {
	roles, count, err := s.roleRepo.ListRoles(ctx, skip, limit)
	if err != nil {
		log.ErrorContext(ctx, "list roles failed", "err", err)
		return nil, UnExpectedError
	}

	data := make([]*dto.RoleDTO, 0, len(roles))
	for _, role := range roles {
		data = append(data, &dto.RoleDTO{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
		})
	}
	return &dto.RoleListDTO{Data: data, Count: count}, nil
}
