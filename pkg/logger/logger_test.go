package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_CamposBase(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Env: "production", Level: "info", Service: "obratrack"}, &buf)

	l.Info().Str("evento", "arranque").Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "la salida debe ser JSON por línea")
	assert.Equal(t, "obratrack", line["service"], "cada línea lleva la etiqueta service")
	assert.Equal(t, "listo", line["message"])
	assert.Equal(t, "arranque", line["evento"])
	assert.Contains(t, line, "time")
}

func TestNewWithWriter_SinService(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "info"}, &buf)

	l.Info().Msg("sin etiqueta")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "service", "sin Service configurado la etiqueta se omite")
}

func TestWithRequestID_Correlacion(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "info"}, &buf)

	l.WithRequestID("req-123").Info().Msg("primera")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-123", line["request_id"], "el sublogger fija request_id en cada línea")
}

func TestNivel_FiltraPorDebajo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "warn"}, &buf)

	l.Info().Msg("suprimida")
	assert.Zero(t, buf.Len(), "info por debajo de warn no debe escribirse")

	l.Error().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
