package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Login        string     `json:"login"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	StoreID      *int       `json:"store_id"` // Loja vinculada; nil para admins e supervisores
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

type Claims struct {
	UserID      int
	UserName    string
	UserLogin   string
	UserRoleID  int
	UserStoreID *int
	jwt.RegisteredClaims
}

// CanAccessStore indica se o usuário pode consultar o dashboard da loja
// informada. Usuários de loja só enxergam a própria loja; os demais roles
// são autorizados pelo middleware de role.
func (c *Claims) CanAccessStore(storeID int) bool {
	if c.UserStoreID == nil {
		return true
	}
	return *c.UserStoreID == storeID
}
