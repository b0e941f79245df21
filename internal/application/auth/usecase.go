// Package auth autenticación de usuarios: valida credenciales y emite el
// token JWT que el dashboard usa para conocer identidad y rol.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
	"github.com/jhoicas/obratrack-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra la tabla de usuarios.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login valida email y contraseña y devuelve el token con el rol del usuario.
// Email inexistente y contraseña incorrecta devuelven el mismo error para no
// filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: emitir token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		FullName:  user.FirstName + " " + user.LastName,
		Role:      user.RoleName,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
