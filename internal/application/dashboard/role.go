// Package dashboard contiene el motor de reportes operativos por rol:
// resolución de scope, calculadoras de métricas y un builder de reporte por
// cada rol de la aplicación.
package dashboard

// Role variante cerrada sobre los roles que cambian la forma del dashboard.
// Cualquier rol no reconocido (Admin incluido) cae en RoleDefault.
type Role int

const (
	RoleDefault Role = iota
	RoleProjectManager
	RoleSiteSupervisor
	RoleProcurementOfficer
)

// Nombres de rol tal como los persiste la tabla de roles.
const (
	roleNameProjectManager     = "Project Manager"
	roleNameSiteSupervisor     = "Site Supervisor"
	roleNameProcurementOfficer = "Procurement Officer"
)

// ParseRole mapea el nombre de rol del token al variante cerrado.
func ParseRole(name string) Role {
	switch name {
	case roleNameProjectManager:
		return RoleProjectManager
	case roleNameSiteSupervisor:
		return RoleSiteSupervisor
	case roleNameProcurementOfficer:
		return RoleProcurementOfficer
	default:
		return RoleDefault
	}
}

// String devuelve el nombre canónico del rol.
func (r Role) String() string {
	switch r {
	case RoleProjectManager:
		return roleNameProjectManager
	case RoleSiteSupervisor:
		return roleNameSiteSupervisor
	case RoleProcurementOfficer:
		return roleNameProcurementOfficer
	default:
		return "Admin"
	}
}
