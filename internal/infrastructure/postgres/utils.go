package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único de PostgreSQL
// (SQLSTATE 23505): la clave duplicada al insertar un code de empresa o de
// industria. Acepta tanto el *pgconn.PgError directo como errores envueltos
// cuyo texto conserva el código.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}
