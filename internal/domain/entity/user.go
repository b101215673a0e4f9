package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	// RolePlatform operador del SaaS: ve y crea tenants. Solo se asigna en la base.
	RolePlatform = "platform"
)

// User perfil de un usuario del sistema (pertenece a un tenant y a una empresa).
type User struct {
	ID           string
	TenantID     string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user, platform
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
