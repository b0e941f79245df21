package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el motor de reportes.
// Los joins resuelven nombres (proyecto, material, empleado, proveedor) en la
// DB para que el use case no haga lookups adicionales.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// idsParam traduce el filtro de IDs a parámetro SQL: nil = sin filtro (el
// predicado `$n::bigint[] IS NULL` lo cortocircuita).
func idsParam(ids []int64) any {
	if ids == nil {
		return nil
	}
	return ids
}

// CountProjects cuenta proyectos según el filtro (IDs, status, manager).
func (r *DashboardRepo) CountProjects(ctx context.Context, filter repository.ProjectFilter) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM projects p
	WHERE ($1::bigint[] IS NULL OR p.id = ANY($1))
	  AND ($2 = '' OR p.status = $2)
	  AND ($3 = 0 OR p.project_manager_id = $3)`

	var n int
	err := r.pool.QueryRow(ctx, query, idsParam(filter.IDs), filter.Status, filter.ManagerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProjects: %w", err)
	}
	return n, nil
}

// ListProjects lista proyectos según el filtro, ordenados por id para que el
// reporte sea determinista.
func (r *DashboardRepo) ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]entity.Project, error) {
	const query = `
	SELECT p.id, p.name, p.code, p.location, p.budget, p.start_date, p.end_date,
	       p.status, p.progress, p.project_manager_id, p.created_at, p.updated_at
	FROM projects p
	WHERE ($1::bigint[] IS NULL OR p.id = ANY($1))
	  AND ($2 = '' OR p.status = $2)
	  AND ($3 = 0 OR p.project_manager_id = $3)
	ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query, idsParam(filter.IDs), filter.Status, filter.ManagerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListProjects: %w", err)
	}
	defer rows.Close()

	var projects []entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Code, &p.Location, &p.Budget, &p.StartDate, &p.EndDate,
			&p.Status, &p.Progress, &p.ProjectManagerID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListProjects scan: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// SumExpenses suma los gastos del proyecto; COALESCE devuelve cero sin filas.
func (r *DashboardRepo) SumExpenses(ctx context.Context, projectID int64) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE project_id = $1`

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, projectID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumExpenses: %w", err)
	}
	return sum, nil
}

// CountUnreadNotifications notificaciones no leídas del usuario.
func (r *DashboardRepo) CountUnreadNotifications(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

	var n int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountUnreadNotifications: %w", err)
	}
	return n, nil
}

// FindEmployeeByEmail devuelve (nil, nil) cuando no hay empleado con ese
// email: para el dashboard la ausencia es dato, no error.
func (r *DashboardRepo) FindEmployeeByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	const query = `
	SELECT id, first_name, last_name, email, phone, position, is_active, created_at, updated_at
	FROM employees
	WHERE email = $1`

	var e entity.Employee
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Position,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard.FindEmployeeByEmail: %w", err)
	}
	return &e, nil
}

// ListActiveAssignments asignaciones vigentes de un empleado.
func (r *DashboardRepo) ListActiveAssignments(ctx context.Context, employeeID int64) ([]entity.Assignment, error) {
	const query = `
	SELECT id, employee_id, project_id, role, start_date, end_date, is_active, created_at, updated_at
	FROM assignments
	WHERE employee_id = $1 AND is_active = TRUE`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListActiveAssignments: %w", err)
	}
	defer rows.Close()

	var assignments []entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ProjectID, &a.Role, &a.StartDate, &a.EndDate,
			&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListActiveAssignments scan: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CountActiveAssignments asignaciones vigentes dentro del conjunto de proyectos.
func (r *DashboardRepo) CountActiveAssignments(ctx context.Context, projectIDs []int64) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM assignments
	WHERE is_active = TRUE
	  AND ($1::bigint[] IS NULL OR project_id = ANY($1))`

	var n int
	if err := r.pool.QueryRow(ctx, query, idsParam(projectIDs)).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountActiveAssignments: %w", err)
	}
	return n, nil
}

// ListInventory inventario con material y proyecto resueltos.
func (r *DashboardRepo) ListInventory(ctx context.Context, projectIDs []int64) ([]repository.InventoryRow, error) {
	const query = `
	SELECT i.project_id, p.name, i.material_id, m.name, i.quantity, m.min_stock, m.unit
	FROM inventory i
	JOIN materials m ON m.id = i.material_id
	JOIN projects  p ON p.id = i.project_id
	WHERE ($1::bigint[] IS NULL OR i.project_id = ANY($1))
	ORDER BY p.name, m.name`

	rows, err := r.pool.Query(ctx, query, idsParam(projectIDs))
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListInventory: %w", err)
	}
	defer rows.Close()

	var result []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(
			&row.ProjectID, &row.ProjectName, &row.MaterialID, &row.MaterialName,
			&row.Quantity, &row.MinStock, &row.Unit,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListInventory scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountEquipment equipos del conjunto de proyectos; status vacío cuenta todos.
func (r *DashboardRepo) CountEquipment(ctx context.Context, projectIDs []int64, status string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM equipment
	WHERE ($1::bigint[] IS NULL OR project_id = ANY($1))
	  AND ($2 = '' OR status = $2)`

	var n int
	if err := r.pool.QueryRow(ctx, query, idsParam(projectIDs), status).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountEquipment: %w", err)
	}
	return n, nil
}

// ListEquipment equipos más recientemente actualizados del conjunto de proyectos.
func (r *DashboardRepo) ListEquipment(ctx context.Context, projectIDs []int64, limit int) ([]repository.EquipmentRow, error) {
	const query = `
	SELECT e.id, e.name, e.type, e.serial_no, e.status, e.project_id,
	       e.created_at, e.updated_at, COALESCE(p.name, '')
	FROM equipment e
	LEFT JOIN projects p ON p.id = e.project_id
	WHERE ($1::bigint[] IS NULL OR e.project_id = ANY($1))
	ORDER BY e.updated_at DESC
	LIMIT NULLIF($2::int, 0)`

	rows, err := r.pool.Query(ctx, query, idsParam(projectIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListEquipment: %w", err)
	}
	defer rows.Close()

	var result []repository.EquipmentRow
	for rows.Next() {
		var row repository.EquipmentRow
		if err := rows.Scan(
			&row.Equipment.ID, &row.Equipment.Name, &row.Equipment.Type, &row.Equipment.SerialNo,
			&row.Equipment.Status, &row.Equipment.ProjectID,
			&row.Equipment.CreatedAt, &row.Equipment.UpdatedAt, &row.ProjectName,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListEquipment scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListRecentExpenses gastos más recientes con proyecto y autor resueltos.
func (r *DashboardRepo) ListRecentExpenses(ctx context.Context, projectIDs []int64, limit int) ([]repository.ExpenseRow, error) {
	const query = `
	SELECT e.id, e.project_id, e.category, e.amount, e.description, e.expense_date,
	       e.recorded_by_id, e.created_at, e.updated_at,
	       p.name, COALESCE(u.first_name || ' ' || u.last_name, '')
	FROM expenses e
	JOIN projects p ON p.id = e.project_id
	LEFT JOIN users u ON u.id = e.recorded_by_id
	WHERE ($1::bigint[] IS NULL OR e.project_id = ANY($1))
	ORDER BY e.created_at DESC
	LIMIT NULLIF($2::int, 0)`

	rows, err := r.pool.Query(ctx, query, idsParam(projectIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListRecentExpenses: %w", err)
	}
	defer rows.Close()

	var result []repository.ExpenseRow
	for rows.Next() {
		var row repository.ExpenseRow
		if err := rows.Scan(
			&row.Expense.ID, &row.Expense.ProjectID, &row.Expense.Category, &row.Expense.Amount,
			&row.Expense.Description, &row.Expense.ExpenseDate, &row.Expense.RecordedByID,
			&row.Expense.CreatedAt, &row.Expense.UpdatedAt,
			&row.ProjectName, &row.RecordedBy,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListRecentExpenses scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListTimesheets partes de horas con empleado y proyecto resueltos.
// workDate != nil filtra por esa fecha exacta (el campo es DATE, sin hora).
func (r *DashboardRepo) ListTimesheets(ctx context.Context, projectIDs []int64, workDate *time.Time, limit int) ([]repository.TimesheetRow, error) {
	const query = `
	SELECT t.id, t.project_id, t.employee_id, t.work_date, t.hours_worked, t.notes, t.status,
	       t.created_at, t.updated_at,
	       emp.first_name || ' ' || emp.last_name, p.name
	FROM timesheets t
	JOIN employees emp ON emp.id = t.employee_id
	JOIN projects  p   ON p.id = t.project_id
	WHERE ($1::bigint[] IS NULL OR t.project_id = ANY($1))
	  AND ($2::date IS NULL OR t.work_date = $2::date)
	ORDER BY t.work_date DESC, t.id DESC
	LIMIT NULLIF($3::int, 0)`

	rows, err := r.pool.Query(ctx, query, idsParam(projectIDs), workDate, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListTimesheets: %w", err)
	}
	defer rows.Close()

	var result []repository.TimesheetRow
	for rows.Next() {
		var row repository.TimesheetRow
		if err := rows.Scan(
			&row.Timesheet.ID, &row.Timesheet.ProjectID, &row.Timesheet.EmployeeID,
			&row.Timesheet.WorkDate, &row.Timesheet.HoursWorked, &row.Timesheet.Notes,
			&row.Timesheet.Status, &row.Timesheet.CreatedAt, &row.Timesheet.UpdatedAt,
			&row.EmployeeName, &row.ProjectName,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListTimesheets scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountPurchaseRequests cuenta PRs por estado.
func (r *DashboardRepo) CountPurchaseRequests(ctx context.Context, status string) (int, error) {
	const query = `SELECT COUNT(*) FROM purchase_requests WHERE status = $1`

	var n int
	if err := r.pool.QueryRow(ctx, query, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountPurchaseRequests: %w", err)
	}
	return n, nil
}

// ListApprovedPurchaseRequests PRs aprobadas con proyecto, proveedor y líneas.
// Dos consultas: cabeceras y líneas; se ensamblan en memoria para no duplicar
// cabeceras por línea en el result set.
func (r *DashboardRepo) ListApprovedPurchaseRequests(ctx context.Context) ([]repository.PurchaseRequestRow, error) {
	const headQuery = `
	SELECT pr.id, pr.pr_number, p.name, s.name, pr.total_amount, pr.approved_at
	FROM purchase_requests pr
	JOIN projects  p ON p.id = pr.project_id
	JOIN suppliers s ON s.id = pr.supplier_id
	WHERE pr.status = 'approved'
	ORDER BY pr.approved_at DESC`

	rows, err := r.pool.Query(ctx, headQuery)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListApprovedPurchaseRequests: %w", err)
	}
	defer rows.Close()

	var result []repository.PurchaseRequestRow
	index := make(map[int64]int)
	for rows.Next() {
		var row repository.PurchaseRequestRow
		if err := rows.Scan(
			&row.ID, &row.PRNumber, &row.ProjectName, &row.SupplierName,
			&row.TotalAmount, &row.ApprovedAt,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListApprovedPurchaseRequests scan: %w", err)
		}
		index[row.ID] = len(result)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(result))
	for _, pr := range result {
		ids = append(ids, pr.ID)
	}

	const itemQuery = `
	SELECT i.purchase_request_id, m.name, i.quantity, i.unit_price
	FROM purchase_request_items i
	JOIN materials m ON m.id = i.material_id
	WHERE i.purchase_request_id = ANY($1)
	ORDER BY i.purchase_request_id, i.id`

	itemRows, err := r.pool.Query(ctx, itemQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListApprovedPurchaseRequests items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var prID int64
		var item repository.PurchaseRequestItemRow
		if err := itemRows.Scan(&prID, &item.MaterialName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("dashboard.ListApprovedPurchaseRequests items scan: %w", err)
		}
		if pos, ok := index[prID]; ok {
			result[pos].Items = append(result[pos].Items, item)
		}
	}
	return result, itemRows.Err()
}

// ListPurchaseOrders POs con proyecto y proveedor resueltos vía su PR.
func (r *DashboardRepo) ListPurchaseOrders(ctx context.Context, limit int) ([]repository.PurchaseOrderRow, error) {
	const query = `
	SELECT po.id, po.po_number, pr.pr_number, p.name, s.name,
	       po.total_amount, po.status, po.expected_delivery_date, po.received_date
	FROM purchase_orders po
	JOIN purchase_requests pr ON pr.id = po.purchase_request_id
	JOIN projects  p ON p.id = pr.project_id
	JOIN suppliers s ON s.id = pr.supplier_id
	ORDER BY po.created_at DESC
	LIMIT NULLIF($1::int, 0)`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListPurchaseOrders: %w", err)
	}
	defer rows.Close()

	var result []repository.PurchaseOrderRow
	for rows.Next() {
		var row repository.PurchaseOrderRow
		if err := rows.Scan(
			&row.ID, &row.PONumber, &row.PRNumber, &row.ProjectName, &row.SupplierName,
			&row.TotalAmount, &row.Status, &row.ExpectedDeliveryDate, &row.ReceivedDate,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListPurchaseOrders scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountPurchaseOrders cuenta POs por estado.
func (r *DashboardRepo) CountPurchaseOrders(ctx context.Context, status string) (int, error) {
	const query = `SELECT COUNT(*) FROM purchase_orders WHERE status = $1`

	var n int
	if err := r.pool.QueryRow(ctx, query, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountPurchaseOrders: %w", err)
	}
	return n, nil
}

// CountActiveSuppliers proveedores activos.
func (r *DashboardRepo) CountActiveSuppliers(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM suppliers WHERE is_active = TRUE`

	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountActiveSuppliers: %w", err)
	}
	return n, nil
}
