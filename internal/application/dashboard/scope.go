package dashboard

import (
	"context"
	"fmt"

	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// FallbackPolicy política aplicada cuando un rol con scope explícito no tiene
// proyectos asignados.
type FallbackPolicy int

const (
	// FallbackNone el scope queda vacío (las consultas usan el centinela).
	FallbackNone FallbackPolicy = iota
	// FallbackAllActiveProjects el scope pasa a ser todos los proyectos
	// activos. Es la política de los Site Supervisor sin asignación: un
	// supervisor sin obra explícita ve todas las obras activas. Decisión de
	// control de acceso deliberadamente permisiva, documentada aquí para que
	// no parezca un descuido.
	FallbackAllActiveProjects
)

// ScopeContext conjunto de proyectos visibles para un (rol, usuario).
// ProjectIDs == nil significa "sin filtro" (ve todos los proyectos);
// un slice vacío significa "ninguno".
type ScopeContext struct {
	ProjectIDs []int64
	Fallback   FallbackPolicy // política que produjo el scope (informativo)
}

// Scoped indica si el scope restringe por proyecto.
func (s ScopeContext) Scoped() bool { return s.ProjectIDs != nil }

// QueryIDs devuelve los IDs a usar en consultas. Un scope restringido pero
// vacío produce el centinela [0] (id imposible) para garantizar cero
// resultados en lugar de una consulta sin filtro.
func (s ScopeContext) QueryIDs() []int64 {
	if s.ProjectIDs == nil {
		return nil
	}
	if len(s.ProjectIDs) == 0 {
		return []int64{0}
	}
	return s.ProjectIDs
}

// Filter traduce el scope a un filtro de proyectos.
func (s ScopeContext) Filter() repository.ProjectFilter {
	return repository.ProjectFilter{IDs: s.QueryIDs()}
}

// ScopeResolver determina los proyectos visibles para cada (rol, usuario).
type ScopeResolver struct {
	repo repository.DashboardRepository
}

// NewScopeResolver construye el resolver.
func NewScopeResolver(repo repository.DashboardRepository) *ScopeResolver {
	return &ScopeResolver{repo: repo}
}

// Resolve calcula el scope según el rol:
//
//   - Project Manager: proyectos donde es manager. Sin fallback.
//   - Site Supervisor: proyectos de sus asignaciones activas (empleado
//     localizado por email); sin empleado o sin asignaciones aplica
//     FallbackAllActiveProjects.
//   - Procurement Officer y Default/Admin: sin filtro por proyecto.
//
// La ausencia de datos nunca es error; solo fallos del repositorio se
// propagan.
func (r *ScopeResolver) Resolve(ctx context.Context, role Role, userID int64, email string) (ScopeContext, error) {
	switch role {
	case RoleProjectManager:
		projects, err := r.repo.ListProjects(ctx, repository.ProjectFilter{ManagerID: userID})
		if err != nil {
			return ScopeContext{}, fmt.Errorf("scope: proyectos del manager: %w", err)
		}
		return ScopeContext{ProjectIDs: projectIDs(projects)}, nil

	case RoleSiteSupervisor:
		return r.resolveSupervisor(ctx, email)

	default:
		// Procurement Officer opera por estado de PR/PO; Admin ve todo.
		return ScopeContext{}, nil
	}
}

func (r *ScopeResolver) resolveSupervisor(ctx context.Context, email string) (ScopeContext, error) {
	var ids []int64

	employee, err := r.repo.FindEmployeeByEmail(ctx, email)
	if err != nil {
		return ScopeContext{}, fmt.Errorf("scope: empleado por email: %w", err)
	}
	if employee != nil {
		assignments, err := r.repo.ListActiveAssignments(ctx, employee.ID)
		if err != nil {
			return ScopeContext{}, fmt.Errorf("scope: asignaciones activas: %w", err)
		}
		for _, a := range assignments {
			ids = append(ids, a.ProjectID)
		}
	}

	if len(ids) > 0 {
		return ScopeContext{ProjectIDs: ids}, nil
	}

	// Sin empleado o sin asignaciones: todas las obras activas.
	active, err := r.repo.ListProjects(ctx, repository.ProjectFilter{Status: entity.ProjectStatusActive})
	if err != nil {
		return ScopeContext{}, fmt.Errorf("scope: proyectos activos: %w", err)
	}
	return ScopeContext{
		ProjectIDs: projectIDs(active),
		Fallback:   FallbackAllActiveProjects,
	}, nil
}

func projectIDs(projects []entity.Project) []int64 {
	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}
