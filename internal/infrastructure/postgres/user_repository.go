package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/obratrack-api/internal/domain"
	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de usuarios para autenticación.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByEmail devuelve el usuario con su rol resuelto por join.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
	SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash,
	       u.role_id, COALESCE(ro.name, ''), u.is_active, u.created_at, u.updated_at
	FROM users u
	LEFT JOIN roles ro ON ro.id = u.role_id
	WHERE u.email = $1`

	var u entity.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.RoleID, &u.RoleName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users.FindByEmail: %w", err)
	}
	return &u, nil
}
