package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawLineItem línea de devolución tal como la entrega la fuente de datos.
// Los valores numéricos llegan sin tipo fijo (decimal de la DB, texto de una
// hoja de cálculo, nil) y se convierten en el normalizador.
type RawLineItem struct {
	Date     *time.Time // obligatoria; nil es una violación del contrato de la fuente
	Zone     string
	Aisle    string
	Quantity any
	Amount   any // importe prorrateado de la línea
	Count    any // siempre 1 por línea
}

// ReturnLineEvent línea ya normalizada y enriquecida con la persona responsable
// del pasillo en la fecha del evento.
type ReturnLineEvent struct {
	Date     time.Time
	Zone     string
	Aisle    string
	Person   string
	Quantity int
	Amount   decimal.Decimal
	Count    int
}
