package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// supervisorBuilder reporte del Site Supervisor: actividad del día, niveles
// de stock con alertas, equipos y partes de horas recientes de sus obras.
type supervisorBuilder struct {
	repo repository.DashboardRepository
	now  func() time.Time // lo inyecta el use case
}

func (b supervisorBuilder) Build(ctx context.Context, userID int64, scope ScopeContext, rep *dto.DashboardDTO) error {
	ids := scope.QueryIDs()

	// "Hoy" a granularidad de día, en la zona horaria del servidor.
	now := b.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		todayRows   []repository.TimesheetRow
		inventories []repository.InventoryRow
		equipment   []repository.EquipmentRow
		recentRows  []repository.TimesheetRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if todayRows, err = b.repo.ListTimesheets(gctx, ids, &today, 0); err != nil {
			return fmt.Errorf("supervisor: partes de hoy: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if inventories, err = b.repo.ListInventory(gctx, ids); err != nil {
			return fmt.Errorf("supervisor: inventario: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if equipment, err = b.repo.ListEquipment(gctx, ids, equipmentLogsLimit); err != nil {
			return fmt.Errorf("supervisor: equipos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recentRows, err = b.repo.ListTimesheets(gctx, ids, nil, recentTimesheetsLimit); err != nil {
			return fmt.Errorf("supervisor: partes recientes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	todayWorkers, todayHours := AggregateDailyHours(todayRows, today)
	lowStock := DetectLowStock(inventories)

	stock := make([]dto.MaterialStockDTO, 0, len(inventories))
	for _, inv := range inventories {
		stock = append(stock, dto.MaterialStockDTO{
			ProjectName:  inv.ProjectName,
			MaterialName: inv.MaterialName,
			Quantity:     inv.Quantity,
			Unit:         inv.Unit,
			MinStock:     inv.MinStock,
			IsLowStock:   inv.Quantity.LessThan(inv.MinStock),
		})
	}

	logs := make([]dto.EquipmentLogDTO, 0, len(equipment))
	inUse := 0
	for _, eq := range equipment {
		if eq.Equipment.Status == entity.EquipmentStatusInUse {
			inUse++
		}
		logs = append(logs, dto.EquipmentLogDTO{
			ID:          eq.Equipment.ID,
			Name:        eq.Equipment.Name,
			Type:        eq.Equipment.Type,
			Status:      eq.Equipment.Status,
			ProjectName: eq.ProjectName,
		})
	}

	rep.KPIs.TodayWorkers = intPtr(todayWorkers)
	rep.KPIs.TodayHours = decimalPtr(todayHours)
	rep.KPIs.LowStockAlerts = intPtr(len(lowStock))
	rep.KPIs.EquipmentInUse = intPtr(inUse)
	rep.DailyActivity = &dto.DailyActivityDTO{
		TodayTimesheets: timesheetDTOs(todayRows),
		TotalHours:      todayHours,
	}
	rep.MaterialStock = stock
	rep.LowStockAlerts = lowStock
	rep.EquipmentLogs = logs
	rep.RecentTimesheets = timesheetDTOs(recentRows)
	return nil
}
