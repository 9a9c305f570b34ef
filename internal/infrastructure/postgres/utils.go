package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/tekstil-api/internal/domain"
)

// Códigos SQLSTATE usados por los adaptadores.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeLockNotAvailable    = "55P03"
	codeQueryCanceled       = "57014"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isForeignKeyViolation referencia a una fila inexistente (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// isLockNotAvailable lock_timeout vencido (55P03) o sentencia cancelada por timeout (57014).
func isLockNotAvailable(err error) bool {
	code := pgCode(err)
	return code == codeLockNotAvailable || code == codeQueryCanceled
}

// isDomainError errores de dominio devueltos por el callback: se propagan sin envolver.
func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrNotFound, domain.ErrInvalidInput, domain.ErrInvalidStatus,
		domain.ErrDuplicate, domain.ErrConflict, domain.ErrUnauthorized, domain.ErrForbidden,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// txError clasifica un fallo ocurrido dentro de una transacción ya revertida.
func txError(ctx context.Context, op string, err error) error {
	var te *domain.TransactionError
	if errors.As(err, &te) {
		return err
	}
	if isDomainError(err) {
		return err
	}
	if isLockNotAvailable(err) || ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.TransactionError{
			Op:        op,
			Err:       fmt.Errorf("%w: %v", domain.ErrLockTimeout, err),
			Retryable: true,
		}
	}
	return &domain.TransactionError{Op: op, Err: err}
}
