package repository

import (
	"context"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

// EfdRepository puerto de persistencia de archivos EFD importados.
// Pensado para usarse dentro de una transacción (ver TxRunner en infrastructure).
type EfdRepository interface {
	CreateFile(ctx context.Context, file *entity.EfdFile) error
	CreateBlock(ctx context.Context, block *entity.EfdBlock) error
	// InsertRecords inserta los detalles bajo el registro de contexto del bloque;
	// la tabla destino depende de la categoría de cada registro.
	InsertRecords(ctx context.Context, block *entity.EfdBlock, records []entity.SpedRecord) error
}

// EfdReader lectura de lo importado por un tenant.
type EfdReader interface {
	// LoadRecords reconstruye los registros del tenant; el CNPJ sale del registro de contexto.
	LoadRecords(ctx context.Context, tenantID string) (entity.SpedData, error)
	ListFiles(ctx context.Context, tenantID string) ([]*entity.EfdFile, error)
}
