package repository

import (
	"context"

	"github.com/jhoicas/obratrack-api/internal/domain/entity"
)

// UserRepository lectura de usuarios para autenticación.
type UserRepository interface {
	// FindByEmail devuelve el usuario con su rol resuelto.
	// Retorna domain.ErrUserNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
