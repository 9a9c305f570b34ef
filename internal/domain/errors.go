package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidStatus = errors.New("estado inválido")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrLockTimeout   = errors.New("tiempo de espera del bloqueo agotado")
)

// TransactionError envuelve cualquier fallo de base de datos ocurrido dentro de una
// transacción. La transacción ya fue revertida cuando el llamador lo recibe.
type TransactionError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *TransactionError) Error() string {
	if e.Op == "" {
		return "transacción: " + e.Err.Error()
	}
	return "transacción " + e.Op + ": " + e.Err.Error()
}

func (e *TransactionError) Unwrap() error { return e.Err }

// IsRetryable indica si err es un TransactionError que puede reintentarse sin riesgo
// (bloqueo no adquirido o contexto vencido antes del commit).
func IsRetryable(err error) bool {
	var txErr *TransactionError
	if errors.As(err, &txErr) {
		return txErr.Retryable
	}
	return false
}
