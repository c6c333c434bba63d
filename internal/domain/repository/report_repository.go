package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
)

// EventQuery consulta de lectura de líneas de devolución ya prorrateadas.
// Las implementaciones son read-only.
type EventQuery interface {
	// QueryReturnLineEvents devuelve una línea por artículo de cada devolución
	// cuya fecha cae en el rango del filtro, con el total de la devolución
	// prorrateado por piezas. El orden no importa.
	QueryReturnLineEvents(ctx context.Context, filter reports.Filter) ([]entity.RawLineItem, error)
}

// AssignmentQuery consulta de lectura de asignaciones de pasillo y personal.
type AssignmentQuery interface {
	// ActiveAssignments devuelve las asignaciones cuyo intervalo intersecta [from, to].
	ActiveAssignments(ctx context.Context, from, to time.Time) ([]entity.Assignment, error)

	// PersonNames devuelve el mapa id → nombre de todo el personal.
	PersonNames(ctx context.Context) (map[string]string, error)
}
