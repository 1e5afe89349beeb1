package logger_test

import (
	"testing"

	"s3util/core/logger"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"DebugConsole", "debug", "console"},
		{"InfoJSON", "info", "json"},
		{"ErrorConsole", "error", "console"},
		{"EmptyDefaults", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&logger.Config{Level: tt.level, Format: tt.format})
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}
