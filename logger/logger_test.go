package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)

	log.Debug().Msg("hidden")
	log.Info().Str("source", "uclick").Msg("comic resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "uclick", entry["source"])
	assert.Equal(t, "comic resolved", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)

	log.Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
}

func TestIsDev(t *testing.T) {
	for env, want := range map[string]bool{
		"":            true,
		"dev":         true,
		"development": true,
		"production":  false,
	} {
		t.Setenv("ENV", env)
		assert.Equal(t, want, IsDev(), "ENV=%q", env)
	}
}
