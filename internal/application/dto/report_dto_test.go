package dto_test

import (
	"testing"

	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/stretchr/testify/assert"
)

func TestParseKPIList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want reports.KPIConfig
	}{
		{"vacío activa todo", "", reports.AllKPIs()},
		{"solo espacios", "   ", reports.AllKPIs()},
		{"uno", "piezas", reports.KPIConfig{Quantity: true}},
		{"varios con espacios y mayúsculas", " Importe , DEVOLUCIONES", reports.KPIConfig{Amount: true, Count: true}},
		{"desconocido se ignora", "importe,margen", reports.KPIConfig{Amount: true}},
		{"ninguno reconocido usa valores por defecto", "amount, margen", reports.AllKPIs()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ReportRequest{KPIs: dto.ParseKPIList(tt.in)}
			assert.Equal(t, tt.want, req.KPIConfig())
		})
	}
}

func TestKPIConfig_CampoAusenteEsVerdadero(t *testing.T) {
	off := false
	req := dto.ReportRequest{KPIs: &dto.KPIsDTO{Amount: &off}}

	assert.Equal(t, reports.KPIConfig{Quantity: true, Count: true}, req.KPIConfig())
}

func TestNewEmptyReport(t *testing.T) {
	r := dto.NewEmptyReport(reports.AllKPIs(), reports.Week)

	assert.Equal(t, "semana", r.General.Period)
	assert.Empty(t, r.General.Labels)
	assert.NotNil(t, r.ByZone)
	assert.NotNil(t, r.Table)
	assert.Empty(t, r.Error)

	e := dto.NewErrorReport(reports.AllKPIs(), reports.Week, "mal")
	assert.Equal(t, "mal", e.Error)
}
