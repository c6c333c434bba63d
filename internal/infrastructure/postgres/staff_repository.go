package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/repository"
)

var _ repository.AssignmentQuery = (*StaffRepo)(nil)

// StaffRepo lecturas de personal y asignaciones de pasillo.
//
// Tablas:
//
//	personal(id, nombre, activo)
//	asignaciones_pasillo(id, pasillo, persona_id, fecha_desde DATE, fecha_hasta DATE NULL)
type StaffRepo struct {
	pool *pgxpool.Pool
}

// NewStaffRepository construye el adaptador.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{pool: pool}
}

// ActiveAssignments devuelve las asignaciones que se cruzan con [from, to].
// fecha_hasta NULL es una asignación abierta.
func (r *StaffRepo) ActiveAssignments(ctx context.Context, from, to time.Time) ([]entity.Assignment, error) {
	const query = `
	SELECT pasillo, persona_id::TEXT, fecha_desde, fecha_hasta
	FROM asignaciones_pasillo
	WHERE fecha_desde <= $2
	  AND (fecha_hasta IS NULL OR fecha_hasta >= $1)
	ORDER BY pasillo, fecha_desde`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, wrapErr("personal.ActiveAssignments", err)
	}
	defer rows.Close()

	var out []entity.Assignment
	for rows.Next() {
		var (
			a     entity.Assignment
			until *time.Time
		)
		if err := rows.Scan(&a.Aisle, &a.PersonID, &a.ValidFrom, &until); err != nil {
			return nil, wrapErr("personal.ActiveAssignments scan", err)
		}
		if until != nil {
			a.ValidTo = *until
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("personal.ActiveAssignments rows", err)
	}
	return out, nil
}

// PersonNames devuelve id → nombre de todo el personal, activo o no: una
// asignación histórica puede apuntar a alguien ya inactivo.
func (r *StaffRepo) PersonNames(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::TEXT, nombre FROM personal`)
	if err != nil {
		return nil, wrapErr("personal.PersonNames", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, wrapErr("personal.PersonNames scan", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("personal.PersonNames rows", err)
	}
	return names, nil
}
