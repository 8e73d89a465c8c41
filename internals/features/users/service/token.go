package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	model "academyku_backend/internals/features/users/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// GenerateTokenPair signs an access + refresh token for the user. The
// refresh token carries typ=refresh so an access token can never be
// replayed against the refresh endpoint.
func GenerateTokenPair(u *model.UserModel, accessSecret, refreshSecret string, now time.Time) (string, string, error) {
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"name": u.UserName,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTokenTTL).Unix(),
	})
	accessStr, err := access.SignedString([]byte(accessSecret))
	if err != nil {
		return "", "", err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.UserID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}
	return accessStr, refreshStr, nil
}

// ParseRefreshToken verifies a refresh token and returns the subject.
func ParseRefreshToken(raw, refreshSecret string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRefreshToken
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidRefreshToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", ErrInvalidRefreshToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidRefreshToken
	}
	return sub, nil
}
