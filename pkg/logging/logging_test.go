package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLevelSplitter(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := zerolog.New(levelSplitter{out: &out, errOut: &errOut})

	logger.Info().Msg("hello")
	logger.Error().Msg("boom")

	assert.Contains(t, out.String(), "hello")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), "boom")
}

func TestNewRespectsLevel(t *testing.T) {
	logger := New("warn", "json")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
