package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// ValidRole indica si el rol pertenece al enum admin | manager | user.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// User representa un usuario del sistema. Email es la clave natural única.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash
	Role         string // admin, manager, user
	Image        string // URL del avatar (opcional)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
