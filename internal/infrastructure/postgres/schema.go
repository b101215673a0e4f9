package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema script completo de la base: jerarquía, perfiles, alícuotas, tablas EFD y RLS.
//
//go:embed migrations/001_schema.sql
var Schema string

// ApplySchema ejecuta el script. Es idempotente (IF NOT EXISTS / ON CONFLICT).
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
