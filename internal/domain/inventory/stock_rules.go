package inventory

import "github.com/shopspring/decimal"

// ApplyOutflow devuelve la existencia después de una salida, con piso en cero.
// Nueva = max(Actual - Salida, 0). Una existencia nula se trata como cero.
func ApplyOutflow(current, outflow decimal.Decimal) decimal.Decimal {
	next := current.Sub(outflow)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// IsCritical marca una materia prima en el listado de stock (actual <= mínimo).
func IsCritical(current, min decimal.Decimal) bool {
	return current.LessThanOrEqual(min)
}

// CountsAsCritical regla del contador de críticos: solo materias con mínimo definido.
func CountsAsCritical(current, min decimal.Decimal) bool {
	return min.IsPositive() && current.LessThanOrEqual(min)
}
