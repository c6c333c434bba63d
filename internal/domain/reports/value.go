package reports

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value número de salida del reporte. NaN e infinitos se serializan como null
// para que el JSON sea siempre válido.
type Value float64

// MarshalJSON implementa json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// Money convierte un importe a Value redondeado a 2 decimales.
func Money(d decimal.Decimal) Value {
	return Value(d.Round(2).InexactFloat64())
}
