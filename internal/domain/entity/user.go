package entity

import "time"

// User cuenta de acceso a la aplicación. RoleName viene del join con la
// tabla de roles y determina la forma del dashboard.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       int64
	RoleName     string // Project Manager | Site Supervisor | Procurement Officer | Admin
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
