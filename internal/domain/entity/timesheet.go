package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de un parte de horas.
const (
	TimesheetStatusPending  = "pending"
	TimesheetStatusApproved = "approved"
	TimesheetStatusRejected = "rejected"
)

// Timesheet parte diario de horas de un trabajador en un proyecto.
// Único por (ProjectID, EmployeeID, WorkDate); WorkDate es fecha sin hora
// y HoursWorked está en [0, 24].
type Timesheet struct {
	ID          int64
	ProjectID   int64
	EmployeeID  int64
	WorkDate    time.Time
	HoursWorked decimal.Decimal
	Notes       string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
