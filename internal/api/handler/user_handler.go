package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc *service.UserService
}

func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func pagination(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	return skip, limit
}

// CreateUser handles POST /user, the open signup endpoint.
func (s *UserHandler) CreateUser(c *gin.Context) {
	var createDTO dto.CreateUserDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.CreateUser(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// GetSelf handles GET /user/me.
func (s *UserHandler) GetSelf(c *gin.Context) {
	user, err := s.userSvc.GetSelf(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateSelf handles PATCH /user/me.
func (s *UserHandler) UpdateSelf(c *gin.Context) {
	var updateDTO dto.UpdateSelfDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.UpdateSelf(c.Request.Context(), c.GetUint64("user_id"), &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// ChangePassword handles PATCH /user/me/password.
func (s *UserHandler) ChangePassword(c *gin.Context) {
	var changeDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.ChangePassword(c.Request.Context(), c.GetUint64("user_id"), &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "password updated successfully"})
}

// DeleteSelf handles DELETE /user/me.
func (s *UserHandler) DeleteSelf(c *gin.Context) {
	if err := s.userSvc.DeleteSelf(c.Request.Context(), c.GetUint64("user_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "user deleted successfully"})
}

// ListUsers handles GET /user; superuser only.
func (s *UserHandler) ListUsers(c *gin.Context) {
	skip, limit := pagination(c)

	users, err := s.userSvc.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// GetUser handles GET /user/:id.
func (s *UserHandler) GetUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	user, err := s.userSvc.GetUser(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// AdminUpdateUser handles PATCH /user/:id; superuser only.
func (s *UserHandler) AdminUpdateUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	var updateDTO dto.AdminUpdateUserDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.AdminUpdateUser(c.Request.Context(), targetID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// AdminDeleteUser handles DELETE /user/:id; superuser only.
func (s *UserHandler) AdminDeleteUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	if err := s.userSvc.AdminDeleteUser(c.Request.Context(), c.GetUint64("user_id"), targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "user deleted successfully"})
}
