package entity

import "time"

// Tenant raíz de la jerarquía multi-tenant (cliente del SaaS).
type Tenant struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// CompanyGroup grupo empresarial dentro de un tenant.
type CompanyGroup struct {
	ID        string
	TenantID  string
	Name      string
	CreatedAt time.Time
}

// Company empresa (pertenece a un grupo y a un tenant).
type Company struct {
	ID        string
	TenantID  string
	GroupID   string
	Name      string
	CreatedAt time.Time
}

// Branch filial de la empresa, identificada fiscalmente por su CNPJ (14 dígitos, sin máscara).
type Branch struct {
	ID        string
	TenantID  string
	CompanyID string
	Name      string
	CNPJ      string
	CreatedAt time.Time
}
