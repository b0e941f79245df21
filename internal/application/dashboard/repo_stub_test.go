package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// stubRepo implementación en memoria de repository.DashboardRepository para
// tests. Aplica los filtros igual que la implementación SQL (incluido el
// centinela [0], que no matchea ningún id real). failWith != nil hace fallar
// toda llamada, para probar la semántica todo-o-nada.
type stubRepo struct {
	projects        []entity.Project
	expensesSum     map[int64]decimal.Decimal
	employees       []entity.Employee
	assignments     []entity.Assignment
	inventory       []repository.InventoryRow
	equipment       []repository.EquipmentRow
	expenses        []repository.ExpenseRow
	timesheets      []repository.TimesheetRow
	approvedPRs     []repository.PurchaseRequestRow
	purchaseOrders  []repository.PurchaseOrderRow
	pendingPRs      int
	issuedPOs       int
	activeSuppliers int
	unread          map[int64]int

	failWith error

	mu    sync.Mutex
	calls int // número de llamadas atendidas
}

var _ repository.DashboardRepository = (*stubRepo)(nil)

// guard cuenta la llamada; las llamadas llegan desde goroutines concurrentes.
func (s *stubRepo) guard() error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.failWith
}

func inIDSet(ids []int64, id int64) bool {
	if ids == nil {
		return true
	}
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *stubRepo) matchProjects(filter repository.ProjectFilter) []entity.Project {
	var out []entity.Project
	for _, p := range s.projects {
		if !inIDSet(filter.IDs, p.ID) {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.ManagerID != 0 && p.ProjectManagerID != filter.ManagerID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *stubRepo) CountProjects(_ context.Context, filter repository.ProjectFilter) (int, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	return len(s.matchProjects(filter)), nil
}

func (s *stubRepo) ListProjects(_ context.Context, filter repository.ProjectFilter) ([]entity.Project, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.matchProjects(filter), nil
}

func (s *stubRepo) SumExpenses(_ context.Context, projectID int64) (decimal.Decimal, error) {
	if err := s.guard(); err != nil {
		return decimal.Zero, err
	}
	if sum, ok := s.expensesSum[projectID]; ok {
		return sum, nil
	}
	return decimal.Zero, nil
}

func (s *stubRepo) CountUnreadNotifications(_ context.Context, userID int64) (int, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	return s.unread[userID], nil
}

func (s *stubRepo) FindEmployeeByEmail(_ context.Context, email string) (*entity.Employee, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	for _, e := range s.employees {
		if e.Email == email {
			emp := e
			return &emp, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListActiveAssignments(_ context.Context, employeeID int64) ([]entity.Assignment, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var out []entity.Assignment
	for _, a := range s.assignments {
		if a.EmployeeID == employeeID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) CountActiveAssignments(_ context.Context, projectIDs []int64) (int, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	n := 0
	for _, a := range s.assignments {
		if a.IsActive && inIDSet(projectIDs, a.ProjectID) {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) ListInventory(_ context.Context, projectIDs []int64) ([]repository.InventoryRow, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var out []repository.InventoryRow
	for _, row := range s.inventory {
		if inIDSet(projectIDs, row.ProjectID) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubRepo) CountEquipment(_ context.Context, projectIDs []int64, status string) (int, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range s.equipment {
		if row.Equipment.ProjectID == nil || !inIDSet(projectIDs, *row.Equipment.ProjectID) {
			continue
		}
		if status != "" && row.Equipment.Status != status {
			continue
		}
		n++
	}
	return n, nil
}

func (s *stubRepo) ListEquipment(_ context.Context, projectIDs []int64, limit int) ([]repository.EquipmentRow, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var out []repository.EquipmentRow
	for _, row := range s.equipment {
		if row.Equipment.ProjectID != nil && inIDSet(projectIDs, *row.Equipment.ProjectID) {
			out = append(out, row)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) ListRecentExpenses(_ context.Context, projectIDs []int64, limit int) ([]repository.ExpenseRow, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var out []repository.ExpenseRow
	for _, row := range s.expenses {
		if inIDSet(projectIDs, row.Expense.ProjectID) {
			out = append(out, row)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) ListTimesheets(_ context.Context, projectIDs []int64, workDate *time.Time, limit int) ([]repository.TimesheetRow, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var out []repository.TimesheetRow
	for _, row := range s.timesheets {
		if !inIDSet(projectIDs, row.Timesheet.ProjectID) {
			continue
		}
		if workDate != nil {
			y1, m1, d1 := workDate.Date()
			y2, m2, d2 := row.Timesheet.WorkDate.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		out = append(out, row)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) CountPurchaseRequests(_ context.Context, status string) (int, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if status == entity.PurchaseRequestStatusPending {
		return s.pendingPRs, nil
	}
	if status == entity.PurchaseRequestStatusApproved {
		return len(s.approvedPRs), nil
	}
	return 0, nil
}

func (s *stubRepo) ListApprovedPurchaseRequests(_ context.Context) ([]repository.PurchaseRequestRow, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.approvedPRs, nil
}

func (s *stubRepo) ListPurchaseOrders(_ context.Context, limit int) ([]repository.PurchaseOrderRow, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	out := s.purchaseOrders
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) CountPurchaseOrders(_ context.Context, status string) (int, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if status == entity.PurchaseOrderStatusIssued {
		return s.issuedPOs, nil
	}
	return 0, nil
}

func (s *stubRepo) CountActiveSuppliers(_ context.Context) (int, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	return s.activeSuppliers, nil
}
