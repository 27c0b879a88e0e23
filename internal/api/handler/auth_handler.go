package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// AccessToken handles POST /auth/access-token.
func (s *AuthHandler) AccessToken(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.authSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

// RefreshToken handles POST /auth/refresh-token.
func (s *AuthHandler) RefreshToken(c *gin.Context) {
	var refreshDTO dto.RefreshTokenDTO
	if err := c.ShouldBind(&refreshDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&refreshDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.authSvc.Refresh(c.Request.Context(), refreshDTO.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

// Logout handles POST /auth/logout; the auth middleware has already
// validated the bearer token.
func (s *AuthHandler) Logout(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := s.authSvc.Logout(c.Request.Context(), tokenString); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RecoverPassword handles POST /auth/password-recovery/:email.
func (s *AuthHandler) RecoverPassword(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	if err := s.authSvc.RecoverPassword(c.Request.Context(), email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "password recovery email sent"})
}

// ResetPassword handles POST /auth/reset-password.
func (s *AuthHandler) ResetPassword(c *gin.Context) {
	var resetDTO dto.ResetPasswordDTO
	if err := c.ShouldBind(&resetDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&resetDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.authSvc.ResetPassword(c.Request.Context(), &resetDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "password updated successfully"})
}
