package service

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/mailer"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/pkg/security"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type AuthService struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login checks the credentials and issues an access and refresh token pair.
func (s *AuthService) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		log.ErrorContext(ctx, "login query failed", "err", err)
		return nil, UnExpectedError
	}
	if user == nil || !security.CheckPasswordHash(loginDTO.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	accessToken, err := security.GenerateAccessToken(user.ID)
	if err != nil {
		log.ErrorContext(ctx, "generate access token failed", "err", err)
		return nil, UnExpectedError
	}
	refreshToken, err := security.GenerateRefreshToken(user.ID)
	if err != nil {
		log.ErrorContext(ctx, "generate refresh token failed", "err", err)
		return nil, UnExpectedError
	}

	return &dto.TokenDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenDTO, error) {
	claims, err := security.ValidateToken(refreshToken, security.TokenTypeRefresh)
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, err := security.SubjectUserID(claims)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "refresh query failed", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	accessToken, err := security.GenerateAccessToken(user.ID)
	if err != nil {
		log.ErrorContext(ctx, "generate access token failed", "err", err)
		return nil, UnExpectedError
	}

	return &dto.TokenDTO{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Logout blacklists the access token signature until the token would have
// expired on its own.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	signature, err := security.ExtractSignature(rawToken)
	if err != nil {
		return ErrInvalidToken
	}

	ttl := time.Duration(config.Cfg.JWT.AccessExpireMinutes) * time.Minute
	if err := redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", ttl); err != nil {
		log.ErrorContext(ctx, "blacklist token failed", "err", err)
		return UnExpectedError
	}
	return nil
}

// RecoverPassword mails a reset link to the account's address.
func (s *AuthService) RecoverPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		log.ErrorContext(ctx, "recover query failed", "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}

	token, err := security.GeneratePasswordResetToken(user.Email)
	if err != nil {
		log.ErrorContext(ctx, "generate reset token failed", "err", err)
		return UnExpectedError
	}

	mailer.SendPasswordResetAsync(user.Email, token)
	return nil
}

// ResetPassword sets a new password for the account named by a valid reset
// token.
func (s *AuthService) ResetPassword(ctx context.Context, resetDTO *dto.ResetPasswordDTO) error {
	email, err := security.VerifyPasswordResetToken(resetDTO.Token)
	if err != nil {
		return ErrInvalidToken
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		log.ErrorContext(ctx, "reset query failed", "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsActive {
		return ErrInactiveUser
	}

	hashed, err := security.HashPassword(resetDTO.NewPassword)
	if err != nil {
		log.ErrorContext(ctx, "hash password failed", "err", err)
		return UnExpectedError
	}
	user.HashedPassword = hashed

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "reset update failed", "err", err)
		return UnExpectedError
	}
	return nil
}
