package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_NivelesConocidos(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("INFO"), "el nivel no distingue mayúsculas")
}

// Un nivel desconocido o vacío no impide el arranque: cae a info.
func TestParseLevel_DesconocidoCaeAInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
}

func TestNew_RespetaElNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, l.zl.GetLevel())
}
