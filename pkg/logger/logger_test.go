package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/pkg/logger"
)

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado por nivel")
	log.Warn().Str("code", "acme").Msg("aviso")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "acme", entry["code"])
	assert.Equal(t, "aviso", entry["message"])
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Output: &buf})

	log.Debug().Msg("oculto")
	assert.Zero(t, buf.Len())
	log.Info().Msg("visible")
	assert.NotZero(t, buf.Len())
}
