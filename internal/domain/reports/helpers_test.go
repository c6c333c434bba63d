package reports_test

import (
	"testing"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := reports.ParseDate(s)
	require.NoError(t, err)
	return d
}

func event(t *testing.T, date, zone, aisle, person string, qty int, amount string) entity.ReturnLineEvent {
	t.Helper()
	return entity.ReturnLineEvent{
		Date:     day(t, date),
		Zone:     zone,
		Aisle:    aisle,
		Person:   person,
		Quantity: qty,
		Amount:   decimal.RequireFromString(amount),
		Count:    1,
	}
}
