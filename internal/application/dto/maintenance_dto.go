package dto

import "time"

// MachineDTO máquina activa.
type MachineDTO struct {
	ID   int64  `json:"machine_id"`
	Name string `json:"machine_name"`
	Type string `json:"machine_type"`
}

// FaultReportDTO reporte de falla.
type FaultReportDTO struct {
	ID          int64     `json:"report_id"`
	PersonnelID int64     `json:"personnel_id"`
	MachineID   int64     `json:"machine_id"`
	MachineName string    `json:"machine_name"`
	FaultType   string    `json:"fault_type"`
	Priority    string    `json:"priority"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateFaultReportRequest body de POST /api/machine-fault-reports.
type CreateFaultReportRequest struct {
	PersonnelID int64  `json:"personnel_id"`
	MachineID   int64  `json:"machine_id"`
	FaultType   string `json:"fault_type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
