package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
	"github.com/jhoicas/simulador-reforma/internal/domain/sped"
	"github.com/jhoicas/simulador-reforma/pkg/cnpj"
)

var (
	_ repository.EfdRepository = (*EfdRepo)(nil)
	_ repository.EfdReader     = (*EfdRepo)(nil)
)

// childTable tabla hija de un registro de contexto (efd_c010 o efd_d010).
type childTable struct {
	name    string
	parent  string
	fk      string
	indOper bool
	taxes   bool // C600 solo guarda valor y fecha
}

var childTables = map[entity.Category]childTable{
	entity.CategoryGoods:        {name: "efd_c100", parent: "efd_c010", fk: "reg_c010_id", indOper: true, taxes: true},
	entity.CategoryEnergyCredit: {name: "efd_c500", parent: "efd_c010", fk: "reg_c010_id", taxes: true},
	entity.CategoryEnergyDebit:  {name: "efd_c600", parent: "efd_c010", fk: "reg_c010_id"},
	entity.CategoryFreight:      {name: "efd_d100", parent: "efd_d010", fk: "reg_d010_id", indOper: true, taxes: true},
}

// loadOrder orden de lectura; coincide con los campos de SpedData.
var loadOrder = []entity.Category{
	entity.CategoryGoods, entity.CategoryEnergyCredit, entity.CategoryEnergyDebit, entity.CategoryFreight,
}

func (t childTable) columns() []string {
	cols := []string{"tenant_id", t.fk, "seq"}
	if t.indOper {
		cols = append(cols, "ind_oper")
	}
	cols = append(cols, "vl_doc")
	if t.taxes {
		cols = append(cols, "vl_bc_icms", "vl_icms", "vl_pis", "vl_cofins")
	}
	return append(cols, "dt_doc")
}

func (t childTable) row(tenantID, blockID string, seq int, rec entity.SpedRecord) []any {
	row := []any{tenantID, blockID, seq}
	if t.indOper {
		var ind any
		if rec.IndOper != entity.IndOperNone {
			ind = rec.IndOper
		}
		row = append(row, ind)
	}
	row = append(row, money(rec.VlDoc))
	if t.taxes {
		row = append(row, money(rec.VlBcIcms), money(rec.VlIcms), money(rec.VlPis), money(rec.VlCofins))
	}
	return append(row, nullableDate(sped.ParseDate(rec.DtDoc)))
}

// selectQuery lista uniforme de columnas para todas las categorías; lo que la tabla
// no guarda sale como NULL o 0.
func (t childTable) selectQuery() string {
	ind := "NULL::integer"
	taxes := "0::numeric, 0::numeric, 0::numeric, 0::numeric"
	if t.indOper {
		ind = "h.ind_oper"
	}
	if t.taxes {
		taxes = "h.vl_bc_icms, h.vl_icms, h.vl_pis, h.vl_cofins"
	}
	return fmt.Sprintf(`
		SELECT c.cnpj, %s, h.dt_doc, h.vl_doc, %s
		  FROM %s h
		  JOIN %s c ON c.id = h.%s
		  JOIN efd_0000 f ON f.id = c.efd_0000_id
		 WHERE h.tenant_id = $1
		 ORDER BY f.created_at, f.id, c.seq, h.seq`,
		ind, taxes, t.name, t.parent, t.fk)
}

// EfdRepo persistencia de archivos EFD (tablas efd_*).
type EfdRepo struct {
	q Querier
}

// NewEfdRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEfdRepository(q Querier) *EfdRepo {
	return &EfdRepo{q: q}
}

// CreateFile inserta el registro 0000.
func (r *EfdRepo) CreateFile(ctx context.Context, f *entity.EfdFile) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO efd_0000 (id, tenant_id, filial_id, cnpj, periodo_inicio, periodo_fim, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.TenantID, f.BranchID, f.CNPJ, f.PeriodStart, f.PeriodEnd, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert efd_0000: %w", err)
	}
	return nil
}

// CreateBlock inserta el registro de contexto en efd_c010 o efd_d010 según el bloque.
func (r *EfdRepo) CreateBlock(ctx context.Context, b *entity.EfdBlock) error {
	table := "efd_c010"
	if b.Block == entity.BlockFreight {
		table = "efd_d010"
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO `+table+` (id, tenant_id, efd_0000_id, cnpj, seq) VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.TenantID, b.FileID, b.CNPJ, b.Seq,
	)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// InsertRecords copia los detalles con COPY, una tabla por categoría.
func (r *EfdRepo) InsertRecords(ctx context.Context, b *entity.EfdBlock, records []entity.SpedRecord) error {
	rows := make(map[entity.Category][][]any)
	for i, rec := range records {
		t, ok := childTables[rec.Category]
		if !ok {
			return fmt.Errorf("categoría desconocida %q", rec.Category)
		}
		rows[rec.Category] = append(rows[rec.Category], t.row(b.TenantID, b.ID, i, rec))
	}
	for _, cat := range loadOrder {
		if len(rows[cat]) == 0 {
			continue
		}
		t := childTables[cat]
		if _, err := r.q.CopyFrom(ctx, pgx.Identifier{t.name}, t.columns(), pgx.CopyFromRows(rows[cat])); err != nil {
			return fmt.Errorf("copy %s: %w", t.name, err)
		}
	}
	return nil
}

// LoadRecords reconstruye los registros del tenant. DtDoc vuelve en formato AAAA-MM-DD
// (vacío si era NULL) y un CNPJ vacío se reemplaza por cnpj.Placeholder.
func (r *EfdRepo) LoadRecords(ctx context.Context, tenantID string) (entity.SpedData, error) {
	loaded := make(map[entity.Category][]entity.SpedRecord, len(loadOrder))
	for _, cat := range loadOrder {
		recs, err := r.loadCategory(ctx, tenantID, cat)
		if err != nil {
			return entity.SpedData{}, err
		}
		loaded[cat] = recs
	}
	return entity.SpedData{
		Goods:         loaded[entity.CategoryGoods],
		EnergyCredits: loaded[entity.CategoryEnergyCredit],
		EnergyDebits:  loaded[entity.CategoryEnergyDebit],
		Freight:       loaded[entity.CategoryFreight],
	}, nil
}

func (r *EfdRepo) loadCategory(ctx context.Context, tenantID string, cat entity.Category) ([]entity.SpedRecord, error) {
	t := childTables[cat]
	rows, err := r.q.Query(ctx, t.selectQuery(), tenantID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", t.name, err)
	}
	defer rows.Close()

	list := []entity.SpedRecord{}
	for rows.Next() {
		var (
			id                         string
			ind                        *int
			dt                         *time.Time
			doc, bc, icms, pis, cofins decimal.Decimal
		)
		if err := rows.Scan(&id, &ind, &dt, &doc, &bc, &icms, &pis, &cofins); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		rec := entity.SpedRecord{
			Category: cat,
			CNPJ:     trimChar(id),
			IndOper:  entity.IndOperNone,
			VlDoc:    doc.InexactFloat64(),
			VlBcIcms: bc.InexactFloat64(),
			VlIcms:   icms.InexactFloat64(),
			VlPis:    pis.InexactFloat64(),
			VlCofins: cofins.InexactFloat64(),
		}
		if rec.CNPJ == "" {
			rec.CNPJ = cnpj.Placeholder
		}
		if ind != nil {
			rec.IndOper = *ind
		}
		if dt != nil {
			rec.DtDoc = dt.Format("2006-01-02")
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListFiles archivos importados por el tenant, más recientes primero.
func (r *EfdRepo) ListFiles(ctx context.Context, tenantID string) ([]*entity.EfdFile, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, tenant_id, filial_id, cnpj, periodo_inicio, periodo_fim, created_at
		  FROM efd_0000 WHERE tenant_id = $1 ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list efd_0000: %w", err)
	}
	defer rows.Close()

	var list []*entity.EfdFile
	for rows.Next() {
		var f entity.EfdFile
		if err := rows.Scan(&f.ID, &f.TenantID, &f.BranchID, &f.CNPJ, &f.PeriodStart, &f.PeriodEnd, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan efd_0000: %w", err)
		}
		f.CNPJ = trimChar(f.CNPJ)
		list = append(list, &f)
	}
	return list, rows.Err()
}
