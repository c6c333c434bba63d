package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/jhoicas/Devoluciones-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.EventQuery = (*ReturnQuery)(nil)

// ReturnQuery lee devoluciones y sus artículos y las entrega prorrateadas.
//
// Tablas:
//
//	devoluciones(id, folio, fecha DATE, zona, total NUMERIC)
//	devolucion_articulos(id, devolucion_id, codigo, pasillo, cantidad)
type ReturnQuery struct {
	pool *pgxpool.Pool
}

// NewReturnQuery construye el adaptador.
func NewReturnQuery(pool *pgxpool.Pool) *ReturnQuery {
	return &ReturnQuery{pool: pool}
}

// returnRow fila plana devolución × artículo.
type returnRow struct {
	ID       string
	Folio    string
	Date     time.Time
	Zone     string
	Total    decimal.Decimal
	Code     string
	Aisle    string
	Quantity int
}

// returnLinesSQL trae los artículos de las devoluciones del rango. Zona y
// pasillo no se filtran aquí: las claves se normalizan en Go (NFC, espacios,
// mayúsculas en español) y el prorrateo necesita todos los artículos.
const returnLinesSQL = `
	SELECT
	    d.id::TEXT,
	    COALESCE(d.folio, ''),
	    d.fecha,
	    COALESCE(d.zona, ''),
	    COALESCE(d.total, 0),
	    COALESCE(a.codigo, ''),
	    COALESCE(a.pasillo, ''),
	    COALESCE(a.cantidad, 0)
	FROM devoluciones d
	JOIN devolucion_articulos a ON a.devolucion_id = d.id
	WHERE d.fecha BETWEEN $1 AND $2
	ORDER BY d.id, a.id`

// QueryReturnLineEvents trae las devoluciones del rango y prorratea cada una.
// Los filtros de zona y pasillo los aplica el caso de uso sobre las claves
// normalizadas.
func (q *ReturnQuery) QueryReturnLineEvents(ctx context.Context, filter reports.Filter) ([]entity.RawLineItem, error) {
	rows, err := q.pool.Query(ctx, returnLinesSQL, filter.From, filter.To)
	if err != nil {
		return nil, wrapErr("reportes.QueryReturnLineEvents", err)
	}
	defer rows.Close()

	var flat []returnRow
	for rows.Next() {
		var r returnRow
		if err := rows.Scan(
			&r.ID,
			&r.Folio,
			&r.Date,
			&r.Zone,
			&r.Total,
			&r.Code,
			&r.Aisle,
			&r.Quantity,
		); err != nil {
			return nil, wrapErr("reportes.QueryReturnLineEvents scan", err)
		}
		flat = append(flat, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("reportes.QueryReturnLineEvents rows", err)
	}
	return reports.ProrateAll(groupReturns(flat)), nil
}

// groupReturns reconstruye las devoluciones a partir de filas ordenadas por id.
func groupReturns(rows []returnRow) []entity.Return {
	var out []entity.Return
	for _, r := range rows {
		if n := len(out); n == 0 || out[n-1].ID != r.ID {
			out = append(out, entity.Return{
				ID:    r.ID,
				Folio: r.Folio,
				Date:  r.Date,
				Zone:  r.Zone,
				Total: r.Total,
			})
		}
		last := &out[len(out)-1]
		last.Items = append(last.Items, entity.ReturnItem{Code: r.Code, Aisle: r.Aisle, Quantity: r.Quantity})
	}
	return out
}
