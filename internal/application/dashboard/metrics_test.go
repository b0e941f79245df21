package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

func tsAt(day time.Time, hours string) entity.Timesheet {
	return entity.Timesheet{WorkDate: day, HoursWorked: dec(hours), Status: entity.TimesheetStatusApproved}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateBudgetUsage_Basico(t *testing.T) {
	usage := CalculateBudgetUsage(1, "Downtown", dec("5000000"), dec("5500000"))

	assert.True(t, usage.Spent.Equal(dec("5500000")))
	assert.True(t, usage.Remaining.Equal(dec("-500000")), "remaining debe ser budget - spent")
	assert.True(t, usage.Percentage.Equal(dec("110")), "percentage debe ser spent/budget*100, obtuvo %s", usage.Percentage)
	assert.False(t, usage.BudgetUndefined)
	assert.True(t, IsBudgetOverrun(usage), "110%% es overrun")
}

func TestCalculateBudgetUsage_SinGastos(t *testing.T) {
	usage := CalculateBudgetUsage(2, "Puente Norte", dec("1000000"), decimal.Zero)

	assert.True(t, usage.Remaining.Equal(dec("1000000")))
	assert.True(t, usage.Percentage.IsZero())
	assert.False(t, IsBudgetOverrun(usage))
}

// Política presupuesto-cero: nunca NaN/Inf; percentage 0 y flag cuando hay gasto.
func TestCalculateBudgetUsage_PresupuestoCero(t *testing.T) {
	sinGasto := CalculateBudgetUsage(3, "Bodega", decimal.Zero, decimal.Zero)
	assert.True(t, sinGasto.Percentage.IsZero())
	assert.False(t, sinGasto.BudgetUndefined)

	conGasto := CalculateBudgetUsage(3, "Bodega", decimal.Zero, dec("1500"))
	assert.True(t, conGasto.Percentage.IsZero(), "presupuesto cero no debe producir porcentaje")
	assert.True(t, conGasto.BudgetUndefined, "gasto sin presupuesto debe marcarse como indefinido")
	assert.True(t, conGasto.Remaining.Equal(dec("-1500")))
	assert.False(t, IsBudgetOverrun(conGasto), "overrun es estrictamente percentage > 100")
}

// Exactamente 100% no es overrun (desigualdad estricta).
func TestIsBudgetOverrun_Frontera(t *testing.T) {
	justo := CalculateBudgetUsage(4, "Exacto", dec("1000"), dec("1000"))
	assert.True(t, justo.Percentage.Equal(dec("100")))
	assert.False(t, IsBudgetOverrun(justo))

	pasado := CalculateBudgetUsage(4, "Pasado", dec("1000"), dec("1000.01"))
	assert.True(t, IsBudgetOverrun(pasado))
}

func TestCalculateResourceUtilization(t *testing.T) {
	ru := CalculateResourceUtilization(10, 4, 7)

	assert.Equal(t, 10, ru.Equipment.Total)
	assert.Equal(t, 4, ru.Equipment.InUse)
	assert.Equal(t, 6, ru.Equipment.Available)
	assert.True(t, ru.Equipment.UtilizationRate.Equal(dec("40")))
	assert.Equal(t, 7, ru.Employees.Total)
	assert.True(t, ru.Employees.UtilizationRate.Equal(dec("100")),
		"todo empleado asignado cuenta como ocupado")
}

// Totales en cero jamás dividen: tasas en 0, nunca NaN.
func TestCalculateResourceUtilization_TotalesCero(t *testing.T) {
	ru := CalculateResourceUtilization(0, 0, 0)

	assert.True(t, ru.Equipment.UtilizationRate.IsZero())
	assert.True(t, ru.Employees.UtilizationRate.IsZero())
	assert.Equal(t, 0, ru.Equipment.Available)
}

func TestDetectLowStock_DesigualdadEstricta(t *testing.T) {
	rows := []repository.InventoryRow{
		{ProjectName: "Obra X", MaterialName: "Cemento", Quantity: dec("80"), MinStock: dec("100"), Unit: "saco"},
		{ProjectName: "Obra X", MaterialName: "Arena", Quantity: dec("100"), MinStock: dec("100"), Unit: "m3"},
		{ProjectName: "Obra Y", MaterialName: "Acero", Quantity: dec("250"), MinStock: dec("50"), Unit: "kg"},
	}

	alerts := DetectLowStock(rows)

	require.Len(t, alerts, 1, "solo quantity < minStock es stock bajo; igual NO lo es")
	assert.Equal(t, "Cemento", alerts[0].MaterialName)
	assert.True(t, alerts[0].CurrentStock.Equal(dec("80")))
	assert.True(t, alerts[0].MinStock.Equal(dec("100")))
	assert.Equal(t, "saco", alerts[0].Unit)
}

func TestDetectLowStock_SinFilas(t *testing.T) {
	alerts := DetectLowStock(nil)
	require.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestAggregateDailyHours(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, -1)

	rows := []repository.TimesheetRow{
		{Timesheet: tsAt(day, "8")},
		{Timesheet: tsAt(day, "7.5")},
		{Timesheet: tsAt(otherDay, "6")}, // otro día, fuera del agregado
	}

	workers, hours := AggregateDailyHours(rows, day)

	assert.Equal(t, 2, workers, "cada fila del día es un trabajador-día")
	assert.True(t, hours.Equal(dec("15.5")), "suma de horas del día, obtuvo %s", hours)
}

func TestAggregateDailyHours_SinFilas(t *testing.T) {
	workers, hours := AggregateDailyHours(nil, time.Now())
	assert.Zero(t, workers)
	assert.True(t, hours.IsZero())
}

func TestSumProcurementTotals(t *testing.T) {
	prs := []repository.PurchaseRequestRow{
		{TotalAmount: dec("1000")},
		{TotalAmount: dec("2000")},
		{TotalAmount: dec("1500")},
	}

	total := SumProcurementTotals(prs)
	assert.True(t, total.Equal(dec("4500")))

	assert.True(t, SumProcurementTotals(nil).IsZero())
}
