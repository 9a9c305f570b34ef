package entity

import "time"

// Machine máquina de producción.
type Machine struct {
	ID   int64
	Name string
	Type string
}

// Estado inicial de un reporte de falla.
const FaultStatusOpen = "Açık"

// FaultReport reporte de falla de máquina creado por un empleado.
type FaultReport struct {
	ID          int64
	PersonnelID int64
	MachineID   int64
	MachineName string
	FaultType   string
	Priority    string
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
