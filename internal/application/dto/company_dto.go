package dto

import "time"

// CreateTenantRequest entrada para crear un tenant.
type CreateTenantRequest struct {
	Name string `json:"name"`
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantListResponse lista paginada de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateGroupRequest entrada para crear un grupo empresarial en el tenant del usuario.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// GroupResponse salida de un grupo empresarial.
type GroupResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCompanyRequest entrada para crear una empresa dentro de un grupo.
type CreateCompanyRequest struct {
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	GroupID   string    `json:"group_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBranchRequest entrada para crear una filial. El CNPJ se acepta con o sin máscara.
type CreateBranchRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	CNPJ      string `json:"cnpj"`
}

// BranchResponse salida de una filial.
type BranchResponse struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	CompanyID     string    `json:"company_id"`
	Name          string    `json:"name"`
	CNPJ          string    `json:"cnpj"`
	CNPJFormatted string    `json:"cnpj_formatted"`
	CreatedAt     time.Time `json:"created_at"`
}
