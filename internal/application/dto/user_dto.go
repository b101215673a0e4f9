package dto

import "time"

// RegisterRequest entrada del registro. Dos modos:
//   - tenant_id + company_id: se une a una empresa existente (rol user, pendiente de confirmación);
//   - tenant_name + company_name: crea el tenant, su grupo y la empresa, y el usuario queda como admin.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	TenantID    string `json:"tenant_id"`
	CompanyID   string `json:"company_id"`
	TenantName  string `json:"tenant_name"`
	CompanyName string `json:"company_name"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
