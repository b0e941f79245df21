package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de un proyecto de obra.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

// Project representa una obra en ejecución. Budget es el presupuesto total
// asignado (>= 0); Progress es el avance reportado en porcentaje entero [0,100].
type Project struct {
	ID               int64
	Name             string
	Code             string // código único de obra
	Location         string
	Budget           decimal.Decimal
	StartDate        time.Time
	EndDate          *time.Time
	Status           string
	Progress         int
	ProjectManagerID int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
