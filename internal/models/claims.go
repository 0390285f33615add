package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionPaymentWrite = "payment:write"
	PermissionRefundWrite  = "refund:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{PermissionPaymentWrite, PermissionRefundWrite}
	case "user":
		return []string{PermissionPaymentWrite}
	default:
		return []string{}
	}
}
