package entity

import "time"

// Estados posibles de un equipo.
const (
	EquipmentStatusAvailable   = "available"
	EquipmentStatusInUse       = "in_use"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusRetired     = "retired"
)

// Equipment maquinaria o herramienta de obra. ProjectID es nil cuando el
// equipo no está asignado a ningún proyecto.
type Equipment struct {
	ID        int64
	Name      string
	Type      string
	SerialNo  string
	Status    string
	ProjectID *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
