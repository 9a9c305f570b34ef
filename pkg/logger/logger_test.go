package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_RespetaNivelYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn").Component("fulfillment")

	l.Info().Msg("no debe salir")
	l.Warn().Int64("order_id", 7).Msg("sí sale")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "fulfillment", entry["component"])
	assert.Equal(t, float64(7), entry["order_id"])
}

func TestNop_NoEscribe(t *testing.T) {
	l := Nop()
	l.Error().Msg("descartado")
	assert.NotNil(t, l.Zerolog())
}

func TestParseLevel_Desconocido(t *testing.T) {
	assert.Equal(t, "info", parseLevel("loud").String())
}

func TestParseLevel_MayusculasYVacio(t *testing.T) {
	assert.Equal(t, "debug", parseLevel(" DEBUG ").String())
	assert.Equal(t, "info", parseLevel("").String())
}
