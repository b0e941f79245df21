package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// managerBuilder reporte del Project Manager: presupuestos por proyecto,
// aprobaciones pendientes, utilización de recursos, stock bajo y overruns.
type managerBuilder struct {
	repo repository.DashboardRepository
}

func (b managerBuilder) Build(ctx context.Context, userID int64, scope ScopeContext, rep *dto.DashboardDTO) error {
	projects, err := b.repo.ListProjects(ctx, scope.Filter())
	if err != nil {
		return fmt.Errorf("manager: listar proyectos: %w", err)
	}
	ids := scope.QueryIDs()

	var (
		budgets          = make([]dto.ProjectBudgetDTO, len(projects))
		pendingApprovals int
		totalEquipment   int
		equipmentInUse   int
		totalAssigned    int
		inventories      []repository.InventoryRow
		recentExpenses   []repository.ExpenseRow
	)

	// Fan-out: cada consulta es independiente; el presupuesto de cada
	// proyecto solo lee los gastos de ese proyecto, así que paralelizar es
	// seguro. errgroup cancela el resto ante el primer fallo.
	g, gctx := errgroup.WithContext(ctx)

	for i, p := range projects {
		g.Go(func() error {
			spent, err := b.repo.SumExpenses(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("manager: gastos del proyecto %d: %w", p.ID, err)
			}
			budgets[i] = CalculateBudgetUsage(p.ID, p.Name, p.Budget, spent)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		if pendingApprovals, err = b.repo.CountPurchaseRequests(gctx, entity.PurchaseRequestStatusPending); err != nil {
			return fmt.Errorf("manager: PRs pendientes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if totalEquipment, err = b.repo.CountEquipment(gctx, ids, ""); err != nil {
			return fmt.Errorf("manager: total equipos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if equipmentInUse, err = b.repo.CountEquipment(gctx, ids, entity.EquipmentStatusInUse); err != nil {
			return fmt.Errorf("manager: equipos en uso: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if totalAssigned, err = b.repo.CountActiveAssignments(gctx, ids); err != nil {
			return fmt.Errorf("manager: asignaciones activas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if inventories, err = b.repo.ListInventory(gctx, ids); err != nil {
			return fmt.Errorf("manager: inventario: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recentExpenses, err = b.repo.ListRecentExpenses(gctx, ids, recentExpensesLimit); err != nil {
			return fmt.Errorf("manager: gastos recientes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	progress := make([]dto.ProjectProgressDTO, 0, len(projects))
	for _, p := range projects {
		progress = append(progress, dto.ProjectProgressDTO{
			Name:     p.Name,
			Progress: p.Progress,
			Status:   p.Status,
		})
	}

	overruns := make([]dto.BudgetOverrunDTO, 0)
	for _, usage := range budgets {
		if IsBudgetOverrun(usage) {
			overruns = append(overruns, dto.BudgetOverrunDTO{
				ProjectName: usage.ProjectName,
				Budget:      usage.Budget,
				Spent:       usage.Spent,
				Overrun:     usage.Spent.Sub(usage.Budget),
			})
		}
	}

	lowStock := DetectLowStock(inventories)

	rep.KPIs.PendingApprovals = intPtr(pendingApprovals)
	rep.KPIs.LowStockItems = intPtr(len(lowStock))
	rep.KPIs.EquipmentInUse = intPtr(equipmentInUse)
	rep.KPIs.BudgetOverruns = intPtr(len(overruns))
	rep.BudgetUsage = budgets
	rep.ProjectProgress = progress
	rep.RecentExpenses = expenseDTOs(recentExpenses)
	ru := CalculateResourceUtilization(totalEquipment, equipmentInUse, totalAssigned)
	rep.ResourceUtilization = &ru
	rep.BudgetOverruns = overruns
	return nil
}
