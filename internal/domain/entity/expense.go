package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto imputado a exactamente un proyecto.
// Amount siempre >= 0; la categoría es texto libre (materiales, mano de obra, etc.).
type Expense struct {
	ID           int64
	ProjectID    int64
	Category     string
	Amount       decimal.Decimal
	Description  string
	ExpenseDate  time.Time
	RecordedByID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
