package reports_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_NoFinitoSeSerializaComoNull(t *testing.T) {
	payload := map[string][]reports.Value{
		"serie": {1.5, reports.Value(math.NaN()), reports.Value(math.Inf(1)), reports.Value(math.Inf(-1)), 0},
	}

	b, err := json.Marshal(payload)
	require.NoError(t, err, "la serialización nunca debe fallar por NaN o infinito")
	assert.JSONEq(t, `{"serie":[1.5,null,null,null,0]}`, string(b))
}

func TestMoney_RedondeaADosDecimales(t *testing.T) {
	assert.Equal(t, reports.Value(10.13), reports.Money(decimal.RequireFromString("10.125")))
	assert.Equal(t, reports.Value(0), reports.Money(decimal.Zero))
}
