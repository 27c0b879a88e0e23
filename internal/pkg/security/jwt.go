package security

import (
	"Inkstone/internal/api/config"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken issues a short-lived access token for the user.
func GenerateAccessToken(userID uint64) (string, error) {
	ttl := time.Duration(config.Cfg.JWT.AccessExpireMinutes) * time.Minute
	return generateToken(strconv.FormatUint(userID, 10), TokenTypeAccess, ttl)
}

// GenerateRefreshToken issues a long-lived refresh token for the user.
func GenerateRefreshToken(userID uint64) (string, error) {
	ttl := time.Duration(config.Cfg.JWT.RefreshExpireMinutes) * time.Minute
	return generateToken(strconv.FormatUint(userID, 10), TokenTypeRefresh, ttl)
}

// GeneratePasswordResetToken issues a reset token whose subject is the
// account email.
func GeneratePasswordResetToken(email string) (string, error) {
	ttl := time.Duration(config.Cfg.JWT.ResetExpireHours) * time.Hour
	return generateToken(email, TokenTypeReset, ttl)
}

func generateToken(subject string, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &UserClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Cfg.Server.AppName,
		},
	}

	method := jwt.GetSigningMethod(config.Cfg.JWT.Algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm: %s", config.Cfg.JWT.Algorithm)
	}

	token := jwt.NewWithClaims(method, claims)

	tokenString, err := token.SignedString([]byte(config.Cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies the signature and expiry and checks the token type.
func ValidateToken(tokenString string, wantType string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Cfg.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is invalid or expired")
	}

	if claims.TokenType != wantType {
		return nil, fmt.Errorf("unexpected token type: %s", claims.TokenType)
	}

	return claims, nil
}

// SubjectUserID parses the decimal user id out of validated claims.
func SubjectUserID(claims *UserClaims) (uint64, error) {
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.New("malformed token subject")
	}
	return id, nil
}

// VerifyPasswordResetToken returns the email a reset token was issued for.
func VerifyPasswordResetToken(tokenString string) (string, error) {
	claims, err := ValidateToken(tokenString, TokenTypeReset)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractSignature returns the signature segment of a JWT.
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("malformed token")
	}
	return parts[2], nil
}
