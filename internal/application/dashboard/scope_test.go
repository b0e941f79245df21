package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obratrack-api/internal/domain/entity"
)

func TestScopeQueryIDs_Centinela(t *testing.T) {
	sinFiltro := ScopeContext{}
	assert.Nil(t, sinFiltro.QueryIDs(), "scope sin filtro no restringe")
	assert.False(t, sinFiltro.Scoped())

	vacio := ScopeContext{ProjectIDs: []int64{}}
	assert.Equal(t, []int64{0}, vacio.QueryIDs(),
		"scope restringido vacío debe usar el id imposible, nunca consulta abierta")
	assert.True(t, vacio.Scoped())

	normal := ScopeContext{ProjectIDs: []int64{7, 9}}
	assert.Equal(t, []int64{7, 9}, normal.QueryIDs())
}

func TestResolve_ProjectManager(t *testing.T) {
	repo := &stubRepo{
		projects: []entity.Project{
			{ID: 1, ProjectManagerID: 10, Status: entity.ProjectStatusActive},
			{ID: 2, ProjectManagerID: 10, Status: entity.ProjectStatusPlanning},
			{ID: 3, ProjectManagerID: 99, Status: entity.ProjectStatusActive},
		},
	}
	resolver := NewScopeResolver(repo)

	scope, err := resolver.Resolve(context.Background(), RoleProjectManager, 10, "pm@obra.co")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, scope.ProjectIDs, "solo los proyectos donde es manager")
}

func TestResolve_ProjectManager_SinProyectos(t *testing.T) {
	repo := &stubRepo{}
	resolver := NewScopeResolver(repo)

	scope, err := resolver.Resolve(context.Background(), RoleProjectManager, 10, "pm@obra.co")
	require.NoError(t, err)
	assert.True(t, scope.Scoped(), "un PM sin proyectos sigue teniendo scope restringido")
	assert.Equal(t, []int64{0}, scope.QueryIDs())
}

func TestResolve_Supervisor_ConAsignaciones(t *testing.T) {
	repo := &stubRepo{
		employees: []entity.Employee{{ID: 5, Email: "super@obra.co"}},
		assignments: []entity.Assignment{
			{EmployeeID: 5, ProjectID: 11, IsActive: true},
			{EmployeeID: 5, ProjectID: 12, IsActive: true},
			{EmployeeID: 5, ProjectID: 13, IsActive: false}, // histórica, no cuenta
			{EmployeeID: 6, ProjectID: 14, IsActive: true},  // otro empleado
		},
	}
	resolver := NewScopeResolver(repo)

	scope, err := resolver.Resolve(context.Background(), RoleSiteSupervisor, 20, "super@obra.co")
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12}, scope.ProjectIDs,
		"exactamente los proyectos de sus asignaciones activas")
	assert.Equal(t, FallbackNone, scope.Fallback)
}

func TestResolve_Supervisor_SinAsignaciones_FallbackActivos(t *testing.T) {
	repo := &stubRepo{
		employees: []entity.Employee{{ID: 5, Email: "super@obra.co"}},
		projects: []entity.Project{
			{ID: 1, Status: entity.ProjectStatusActive},
			{ID: 2, Status: entity.ProjectStatusCompleted},
			{ID: 3, Status: entity.ProjectStatusActive},
		},
	}
	resolver := NewScopeResolver(repo)

	scope, err := resolver.Resolve(context.Background(), RoleSiteSupervisor, 20, "super@obra.co")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, scope.ProjectIDs, "fallback: todas las obras activas")
	assert.Equal(t, FallbackAllActiveProjects, scope.Fallback)
}

func TestResolve_Supervisor_SinEmpleado_FallbackActivos(t *testing.T) {
	repo := &stubRepo{
		projects: []entity.Project{{ID: 1, Status: entity.ProjectStatusActive}},
	}
	resolver := NewScopeResolver(repo)

	scope, err := resolver.Resolve(context.Background(), RoleSiteSupervisor, 20, "fantasma@obra.co")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, scope.ProjectIDs,
		"sin registro de empleado aplica el mismo fallback permisivo")
	assert.Equal(t, FallbackAllActiveProjects, scope.Fallback)
}

func TestResolve_Supervisor_SinProyectosActivos_Centinela(t *testing.T) {
	repo := &stubRepo{} // ningún empleado, ningún proyecto
	resolver := NewScopeResolver(repo)

	scope, err := resolver.Resolve(context.Background(), RoleSiteSupervisor, 20, "super@obra.co")
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, scope.QueryIDs(),
		"scope vacío tras fallback garantiza cero resultados")
}

func TestResolve_ProcurementYDefault_SinScope(t *testing.T) {
	resolver := NewScopeResolver(&stubRepo{})

	for _, role := range []Role{RoleProcurementOfficer, RoleDefault} {
		scope, err := resolver.Resolve(context.Background(), role, 1, "x@obra.co")
		require.NoError(t, err)
		assert.False(t, scope.Scoped(), "rol %s no filtra por proyecto", role)
	}
}

// Un fallo del repositorio al resolver scope se propaga (no es lo mismo que
// ausencia de datos).
func TestResolve_ErrorDeRepositorioSePropaga(t *testing.T) {
	boom := errors.New("conexión perdida")
	resolver := NewScopeResolver(&stubRepo{failWith: boom})

	_, err := resolver.Resolve(context.Background(), RoleSiteSupervisor, 20, "super@obra.co")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestParseRole_Cerrado(t *testing.T) {
	assert.Equal(t, RoleProjectManager, ParseRole("Project Manager"))
	assert.Equal(t, RoleSiteSupervisor, ParseRole("Site Supervisor"))
	assert.Equal(t, RoleProcurementOfficer, ParseRole("Procurement Officer"))
	assert.Equal(t, RoleDefault, ParseRole("Admin"))
	assert.Equal(t, RoleDefault, ParseRole("cualquier otro"))
	assert.Equal(t, RoleDefault, ParseRole(""))
}
