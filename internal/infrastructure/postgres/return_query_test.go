package postgres

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupReturns_AgrupaArticulosPorDevolucion(t *testing.T) {
	d1 := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
	rows := []returnRow{
		{ID: "1", Date: d1, Zone: "Z1", Total: decimal.NewFromInt(100), Aisle: "P1", Quantity: 1},
		{ID: "1", Date: d1, Zone: "Z1", Total: decimal.NewFromInt(100), Aisle: "P2", Quantity: 3},
		{ID: "2", Date: d2, Zone: "Z2", Total: decimal.NewFromInt(50), Aisle: "P1", Quantity: 2},
	}

	returns := groupReturns(rows)

	require.Len(t, returns, 2)
	assert.Len(t, returns[0].Items, 2)
	assert.Equal(t, 4, returns[0].TotalQuantity())
	assert.Equal(t, "Z2", returns[1].Zone)
	assert.Equal(t, "P1", returns[1].Items[0].Aisle)
}

func TestGroupReturns_SinFilas(t *testing.T) {
	assert.Empty(t, groupReturns(nil))
}

func TestReturnLinesSQL_SoloFiltraPorFecha(t *testing.T) {
	assert.Contains(t, returnLinesSQL, "d.fecha BETWEEN $1 AND $2")
	assert.NotContains(t, returnLinesSQL, "$3", "zona y pasillo se filtran sobre claves normalizadas")
	assert.NotContains(t, returnLinesSQL, "UPPER(")
}
