package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims are the session claims carried in the Olinsesp auth cookie.
type Claims struct {
	jwt.RegisteredClaims
	Role    string `json:"role"`
	Lotacao string `json:"lotacao,omitempty"`
}

type Role string

const (
	// RoleAdmin sees and manages every organization.
	RoleAdmin Role = "admin"
	// RoleFocal is the per-organization focal point, scoped to its lotação.
	RoleFocal Role = "focal"
)
