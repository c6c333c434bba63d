package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Devoluciones-api/internal/domain"
)

// wrapErr anota err con la operación y lo clasifica contra los errores de dominio:
// tabla o columna inexistente (clase 42P01/42703) es ErrMissingColumn; fallo de
// conexión o timeout es ErrSourceUnavailable.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUndefinedObject(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrMissingColumn, err)
	}
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrSourceUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUndefinedObject(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" || pgErr.Code == "42703" // undefined_table, undefined_column
	}
	return false
}

func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection_exception, 57P0x operator_intervention (shutdown)
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0")
	}
	return false
}
