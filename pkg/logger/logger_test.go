package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jhoicas/Devoluciones-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConServicioYNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Service: "reportes", Output: &buf})

	l.Info().Msg("no se escribe")
	l.Warn().Str("agrupacion", "mes").Msg("aviso")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "una sola línea JSON")
	assert.Equal(t, "aviso", entry["message"])
	assert.Equal(t, "reportes", entry["service"])
	assert.Equal(t, "mes", entry["agrupacion"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("ruido"))
}
