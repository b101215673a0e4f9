package usecase

import (
	"context"

	"github.com/jhoicas/simulador-reforma/internal/application/auth"
	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
)

// UserUseCase administración de perfiles del tenant (listar, confirmar).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List perfiles del tenant.
func (uc *UserUseCase) List(ctx context.Context, tenantID string) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Confirm habilita el login de un perfil del tenant.
func (uc *UserUseCase) Confirm(ctx context.Context, tenantID, userID string) (*dto.UserResponse, error) {
	if err := uc.repo.Confirm(ctx, tenantID, userID); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}
