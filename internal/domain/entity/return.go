package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return representa una devolución de mercancía: un total monetario único
// y uno o más artículos devueltos. Los artículos no tienen precio propio a
// nivel de devolución; solo una parte proporcional del total.
type Return struct {
	ID    string
	Folio string
	Date  time.Time
	Zone  string          // zona de venta de la devolución completa
	Total decimal.Decimal // importe total de la devolución
	Items []ReturnItem
}

// ReturnItem artículo dentro de una devolución.
type ReturnItem struct {
	Code     string
	Aisle    string // pasillo del almacén asociado a la línea de producto
	Quantity int
}

// TotalQuantity suma de piezas de todos los artículos (negativos cuentan como 0).
func (r *Return) TotalQuantity() int {
	total := 0
	for _, it := range r.Items {
		if it.Quantity > 0 {
			total += it.Quantity
		}
	}
	return total
}
