package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"umrohku_backend/internals/features/admins/model"
)

// IssueToken membuat JWT admin berlaku 24 jam.
func IssueToken(admin *model.AdminUser, secret string) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.AdminID.String(),
		"email":    admin.AdminEmail,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
