package reports_test

import (
	"math"
	"testing"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(t time.Time) *time.Time { return &t }

func TestNormalize_AsignaPersonaYCentinelas(t *testing.T) {
	resolver := reports.NewResolver([]entity.Assignment{
		{Aisle: "P1", PersonID: "u1", ValidFrom: day(t, "2025-11-01"), ValidTo: day(t, "2025-11-30")},
		{Aisle: "P2", PersonID: "u2", ValidFrom: day(t, "2025-11-01")},
	})
	names := map[string]string{"u1": "  Ana   Pérez "}
	d := ptr(day(t, "2025-11-07"))

	raw := []entity.RawLineItem{
		{Date: d, Zone: "z11", Aisle: "p1", Quantity: 2, Amount: decimal.NewFromInt(40), Count: 1},
		{Date: d, Zone: "Z11", Aisle: "P2", Quantity: 1, Amount: 10.5},
		{Date: d, Zone: "", Aisle: "P3", Quantity: 1, Amount: "5"},
		{Date: d, Zone: "Z12", Aisle: "  ", Quantity: 1, Amount: 1},
	}

	events, err := reports.Normalize(raw, resolver, names)
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, "Z11", events[0].Zone)
	assert.Equal(t, "P1", events[0].Aisle)
	assert.Equal(t, "Ana Pérez", events[0].Person)
	assert.Equal(t, "u2", events[1].Person, "sin nombre registrado se usa el id")
	assert.Equal(t, 1, events[1].Count, "sin contador la línea cuenta como una devolución")
	assert.Equal(t, reports.MissingKey, events[2].Zone)
	assert.Equal(t, reports.Unassigned, events[2].Person)
	assert.Equal(t, reports.MissingKey, events[3].Aisle)
	assert.Equal(t, reports.Unassigned, events[3].Person)
}

func TestNormalize_CoercionNumerica(t *testing.T) {
	d := ptr(day(t, "2025-11-07"))
	cases := []struct {
		name    string
		qty     any
		amount  any
		wantQty int
		wantAmt string
	}{
		{"texto numérico", "3", "12.50", 3, "12.5"},
		{"texto inválido", "abc", "n/a", 0, "0"},
		{"nil", nil, nil, 0, "0"},
		{"NaN", math.NaN(), math.NaN(), 0, "0"},
		{"infinito", math.Inf(1), math.Inf(-1), 0, "0"},
		{"negativos", -4, "-10", 0, "0"},
		{"flotante truncado", 3.7, float32(2.5), 3, "2.5"},
		{"decimal", decimal.NewFromInt(2), decimal.RequireFromString("7.25"), 2, "7.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := reports.Normalize([]entity.RawLineItem{
				{Date: d, Zone: "Z", Aisle: "P", Quantity: tc.qty, Amount: tc.amount, Count: 1},
			}, nil, nil)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, tc.wantQty, events[0].Quantity)
			assert.True(t, decimal.RequireFromString(tc.wantAmt).Equal(events[0].Amount),
				"importe esperado %s, obtenido %s", tc.wantAmt, events[0].Amount)
		})
	}
}

func TestNormalize_ErrorSiFaltaFecha(t *testing.T) {
	_, err := reports.Normalize([]entity.RawLineItem{
		{Date: ptr(day(t, "2025-11-07")), Aisle: "P1"},
		{Aisle: "P1", Quantity: 1},
	}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.False(t, domain.IsValidationError(err), "falta de columna es un error interno")
}

func TestNormalize_SinFilas(t *testing.T) {
	events, err := reports.Normalize(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestNormalize_NombresRepetidosNoSeFusionan(t *testing.T) {
	resolver := reports.NewResolver([]entity.Assignment{
		{Aisle: "P1", PersonID: "1", ValidFrom: day(t, "2025-11-01")},
		{Aisle: "P2", PersonID: "2", ValidFrom: day(t, "2025-11-01")},
		{Aisle: "P3", PersonID: "3", ValidFrom: day(t, "2025-11-01")},
	})
	names := map[string]string{"1": "Juan Pérez", "2": " Juan  Pérez", "3": "Ana"}
	d := ptr(day(t, "2025-11-07"))

	events, err := reports.Normalize([]entity.RawLineItem{
		{Date: d, Zone: "Z1", Aisle: "P1", Quantity: 1, Amount: 1},
		{Date: d, Zone: "Z1", Aisle: "P2", Quantity: 1, Amount: 1},
		{Date: d, Zone: "Z1", Aisle: "P3", Quantity: 1, Amount: 1},
	}, resolver, names)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "Juan Pérez (1)", events[0].Person)
	assert.Equal(t, "Juan Pérez (2)", events[1].Person)
	assert.Equal(t, "Ana", events[2].Person, "un nombre único no lleva id")

	groups := reports.Aggregate(events, reports.AllKPIs(), reports.ByPerson)
	assert.Len(t, groups, 3)
}
