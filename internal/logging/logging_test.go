package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"Info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.name))
		})
	}
}

func TestJSONFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := JSON("warn", &buf)

	log.Info().Msg("hidden")
	log.Warn().Int("id", 3).Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"id":3`)
	assert.Contains(t, buf.String(), `"time":`)
}

func TestSetupWritesConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("debug", &buf)

	log.Debug().Str("kind", "ship").Msg("destroyed")
	assert.Contains(t, buf.String(), "destroyed")
	assert.Contains(t, buf.String(), "kind=")
	assert.NotContains(t, buf.String(), "{")
}
