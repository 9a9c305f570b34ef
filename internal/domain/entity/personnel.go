package entity

import "github.com/shopspring/decimal"

// PersonnelStats personal con el agregado de sus turnos registrados.
type PersonnelStats struct {
	ID             int64
	FullName       string
	Active         bool
	ShiftCount     int
	PlannedMinutes decimal.Decimal
	WorkedMinutes  decimal.Decimal
	AvgEfficiency  decimal.Decimal
}

// EmployeeEfficiency eficiencia promedio de un empleado activo.
type EmployeeEfficiency struct {
	ID            int64
	FullName      string
	AvgEfficiency decimal.Decimal
}
