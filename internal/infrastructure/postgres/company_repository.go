package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
)

var (
	_ repository.TenantRepository       = (*TenantRepo)(nil)
	_ repository.CompanyGroupRepository = (*CompanyGroupRepo)(nil)
	_ repository.CompanyRepository      = (*CompanyRepo)(nil)
	_ repository.BranchRepository       = (*BranchRepo)(nil)
)

// TenantRepo tabla tenants.
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un nuevo tenant.
func (r *TenantRepo) Create(ctx context.Context, t *entity.Tenant) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO tenants (id, nome, created_at) VALUES ($1, $2, $3)`,
		t.ID, t.Name, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID; nil, nil si no existe.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	var t entity.Tenant
	err := r.q.QueryRow(ctx, `SELECT id, nome, created_at FROM tenants WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// List devuelve tenants con paginación.
func (r *TenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nome, created_at FROM tenants ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CompanyGroupRepo tabla grupos_empresariais.
type CompanyGroupRepo struct {
	q Querier
}

// NewCompanyGroupRepository construye el adaptador de grupos empresariales.
func NewCompanyGroupRepository(q Querier) *CompanyGroupRepo {
	return &CompanyGroupRepo{q: q}
}

// Create persiste un grupo. Un tenant inexistente devuelve ErrInvalidInput.
func (r *CompanyGroupRepo) Create(ctx context.Context, g *entity.CompanyGroup) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO grupos_empresariais (id, tenant_id, nome, created_at) VALUES ($1, $2, $3, $4)`,
		g.ID, g.TenantID, g.Name, g.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID; nil, nil si no existe.
func (r *CompanyGroupRepo) GetByID(ctx context.Context, id string) (*entity.CompanyGroup, error) {
	var g entity.CompanyGroup
	err := r.q.QueryRow(ctx,
		`SELECT id, tenant_id, nome, created_at FROM grupos_empresariais WHERE id = $1`, id,
	).Scan(&g.ID, &g.TenantID, &g.Name, &g.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// ListByTenant grupos del tenant ordenados por nombre.
func (r *CompanyGroupRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.CompanyGroup, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, tenant_id, nome, created_at FROM grupos_empresariais WHERE tenant_id = $1 ORDER BY nome`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompanyGroup
	for rows.Next() {
		var g entity.CompanyGroup
		if err := rows.Scan(&g.ID, &g.TenantID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// CompanyRepo tabla empresas.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO empresas (id, tenant_id, grupo_id, nome, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.TenantID, c.GroupID, c.Name, c.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; nil, nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx,
		`SELECT id, tenant_id, grupo_id, nome, created_at FROM empresas WHERE id = $1`, id,
	).Scan(&c.ID, &c.TenantID, &c.GroupID, &c.Name, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// ListByTenant empresas del tenant ordenadas por nombre.
func (r *CompanyRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, tenant_id, grupo_id, nome, created_at FROM empresas WHERE tenant_id = $1 ORDER BY nome`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.TenantID, &c.GroupID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// BranchRepo tabla filiais.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de filiales.
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `id, tenant_id, empresa_id, nome, cnpj, created_at`

func scanBranch(row interface{ Scan(...any) error }) (*entity.Branch, error) {
	var b entity.Branch
	if err := row.Scan(&b.ID, &b.TenantID, &b.CompanyID, &b.Name, &b.CNPJ, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.CNPJ = trimChar(b.CNPJ)
	return &b, nil
}

// Create persiste una filial. El CNPJ es único en toda la base (ErrDuplicate).
func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO filiais (id, tenant_id, empresa_id, nome, cnpj, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.TenantID, b.CompanyID, b.Name, b.CNPJ, b.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByCNPJ filial del tenant con ese CNPJ; nil, nil si no existe.
func (r *BranchRepo) GetByCNPJ(ctx context.Context, tenantID, cnpj string) (*entity.Branch, error) {
	b, err := scanBranch(r.q.QueryRow(ctx,
		`SELECT `+branchColumns+` FROM filiais WHERE tenant_id = $1 AND cnpj = $2`, tenantID, cnpj,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by cnpj: %w", err)
	}
	return b, nil
}

// FirstByCompany filial más antigua de la empresa; nil, nil si no tiene.
func (r *BranchRepo) FirstByCompany(ctx context.Context, companyID string) (*entity.Branch, error) {
	b, err := scanBranch(r.q.QueryRow(ctx,
		`SELECT `+branchColumns+` FROM filiais WHERE empresa_id = $1 ORDER BY created_at LIMIT 1`, companyID,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("first branch: %w", err)
	}
	return b, nil
}

// ListByTenant filiales del tenant; companyID vacío no filtra por empresa.
func (r *BranchRepo) ListByTenant(ctx context.Context, tenantID, companyID string) ([]*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM filiais WHERE tenant_id = $1`
	args := []any{tenantID}
	if companyID != "" {
		query += ` AND empresa_id = $2`
		args = append(args, companyID)
	}
	query += ` ORDER BY nome`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
