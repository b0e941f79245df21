package entity

import "time"

// Employee trabajador de obra. El email lo enlaza con su cuenta de usuario
// cuando el trabajador también accede a la aplicación (ej: supervisores).
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Position  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignment vínculo temporal empleado↔proyecto (muchos a muchos).
// IsActive distingue asignaciones vigentes de históricas.
type Assignment struct {
	ID         int64
	EmployeeID int64
	ProjectID  int64
	Role       string
	StartDate  time.Time
	EndDate    *time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
