package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleSvc *service.RoleService
}

func NewRoleHandler(roleSvc *service.RoleService) *RoleHandler {
	return &RoleHandler{roleSvc: roleSvc}
}

// ListRoles handles GET /role; superuser only.
func (s *RoleHandler) ListRoles(c *gin.Context) {
	skip, limit := pagination(c)

	roles, err := s.roleSvc.ListRoles(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, roles)
}
