package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// defaultBuilder reporte para Admin y cualquier rol no reconocido:
// presupuestos de todos los proyectos y gastos recientes globales.
type defaultBuilder struct {
	repo repository.DashboardRepository
}

func (b defaultBuilder) Build(ctx context.Context, userID int64, scope ScopeContext, rep *dto.DashboardDTO) error {
	projects, err := b.repo.ListProjects(ctx, scope.Filter())
	if err != nil {
		return fmt.Errorf("default: listar proyectos: %w", err)
	}

	budgets := make([]dto.ProjectBudgetDTO, len(projects))
	var recentExpenses []repository.ExpenseRow

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range projects {
		g.Go(func() error {
			spent, err := b.repo.SumExpenses(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("default: gastos del proyecto %d: %w", p.ID, err)
			}
			budgets[i] = CalculateBudgetUsage(p.ID, p.Name, p.Budget, spent)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		if recentExpenses, err = b.repo.ListRecentExpenses(gctx, scope.QueryIDs(), recentExpensesLimit); err != nil {
			return fmt.Errorf("default: gastos recientes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	rep.BudgetUsage = budgets
	rep.RecentExpenses = expenseDTOs(recentExpenses)
	return nil
}
