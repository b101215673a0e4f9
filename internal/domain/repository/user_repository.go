package repository

import (
	"context"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (tabla profiles).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.User, error)
	// Confirm marca el perfil como confirmado; ErrNotFound si no pertenece al tenant.
	Confirm(ctx context.Context, tenantID, id string) error
}
