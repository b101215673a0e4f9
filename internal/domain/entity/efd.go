package entity

import "time"

// EfdFile cabecera persistida de un archivo importado (tabla efd_0000).
type EfdFile struct {
	ID          string
	TenantID    string
	BranchID    string
	CNPJ        string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	CreatedAt   time.Time
}

// Bloques de la EFD con registro de contexto propio.
const (
	BlockGoods   = "C" // efd_c010: mercaderías y energía
	BlockFreight = "D" // efd_d010: fletes
)

// EfdBlock registro de contexto de un bloque (efd_c010 para C, efd_d010 para D).
// Los detalles del bloque referencian este registro y heredan su CNPJ.
type EfdBlock struct {
	ID       string
	TenantID string
	FileID   string
	Block    string // BlockGoods o BlockFreight
	CNPJ     string
	Seq      int // orden de primera aparición dentro del archivo y bloque
}

// EfdImport resumen de una importación.
type EfdImport struct {
	File          EfdFile
	Goods         int
	EnergyCredits int
	EnergyDebits  int
	Freight       int
}
