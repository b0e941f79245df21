package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// RequestUser identidad del solicitante extraída del token.
type RequestUser struct {
	ID    int64
	Email string
	Role  string
}

// UseCase genera el reporte operativo del rol del solicitante.
//
// Cada reporte es un ciclo read-compute-return sin estado: las lecturas al
// repositorio son consultas independientes sin transacción, por lo que dos
// KPIs del mismo reporte pueden reflejar instantes levemente distintos bajo
// escrituras concurrentes (frescura best-effort, aceptable para un
// dashboard). Cualquier fallo de lectura aborta el reporte completo; no hay
// reportes parciales.
type UseCase struct {
	repo    repository.DashboardRepository
	scopes  *ScopeResolver
	timeout time.Duration
	now     func() time.Time // reloj para "hoy" del supervisor; fijable en tests
}

// NewUseCase construye el caso de uso. timeout <= 0 desactiva el límite
// global por reporte.
func NewUseCase(repo repository.DashboardRepository, timeout time.Duration) *UseCase {
	return &UseCase{
		repo:    repo,
		scopes:  NewScopeResolver(repo),
		timeout: timeout,
		now:     time.Now,
	}
}

// BuildReport resuelve el scope del (rol, usuario), calcula los KPIs comunes
// en paralelo y despacha al builder del rol.
//
// KPIs comunes (idénticos para todos los roles, sobre el scope resuelto):
//  1. activeProjects      → proyectos del scope con status active
//  2. totalProjects       → proyectos del scope
//  3. unreadNotifications → notificaciones no leídas del usuario
func (uc *UseCase) BuildReport(ctx context.Context, user RequestUser) (*dto.DashboardDTO, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	role := ParseRole(user.Role)

	scope, err := uc.scopes.Resolve(ctx, role, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resolver scope: %w", err)
	}

	// ── Goroutines para paralelizar los 3 KPIs comunes ───────────────────────
	type countResult struct {
		n   int
		err error
	}

	activeCh := make(chan countResult, 1)
	totalCh := make(chan countResult, 1)
	unreadCh := make(chan countResult, 1)

	go func() {
		filter := scope.Filter()
		filter.Status = entity.ProjectStatusActive
		n, err := uc.repo.CountProjects(ctx, filter)
		activeCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountProjects(ctx, scope.Filter())
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountUnreadNotifications(ctx, user.ID)
		unreadCh <- countResult{n, err}
	}()

	active := <-activeCh
	total := <-totalCh
	unread := <-unreadCh

	if active.err != nil {
		return nil, fmt.Errorf("dashboard: proyectos activos: %w", active.err)
	}
	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de proyectos: %w", total.err)
	}
	if unread.err != nil {
		return nil, fmt.Errorf("dashboard: notificaciones: %w", unread.err)
	}

	rep := &dto.DashboardDTO{
		Role: roleLabel(role, user.Role),
		KPIs: dto.DashboardKPIs{
			ActiveProjects:      active.n,
			TotalProjects:       total.n,
			UnreadNotifications: unread.n,
		},
	}

	var builder reportBuilder
	switch role {
	case RoleProjectManager:
		builder = managerBuilder{repo: uc.repo}
	case RoleSiteSupervisor:
		builder = supervisorBuilder{repo: uc.repo, now: uc.now}
	case RoleProcurementOfficer:
		builder = procurementBuilder{repo: uc.repo}
	case RoleDefault:
		builder = defaultBuilder{repo: uc.repo}
	default:
		builder = defaultBuilder{repo: uc.repo}
	}

	if err := builder.Build(ctx, user.ID, scope, rep); err != nil {
		return nil, fmt.Errorf("dashboard: construir reporte: %w", err)
	}
	return rep, nil
}

// roleLabel conserva el nombre de rol tal como llegó en el token (ej: un rol
// desconocido se reporta con su nombre real, no como "Admin").
func roleLabel(role Role, rawName string) string {
	if rawName != "" {
		return rawName
	}
	return role.String()
}
