package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{"Debug level", "debug", logrus.DebugLevel},
		{"Info level", "info", logrus.InfoLevel},
		{"Warn level", "warn", logrus.WarnLevel},
		{"Error level", "error", logrus.ErrorLevel},
		{"Invalid level defaults to info", "nonsense", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.level)
			assert.NotNil(t, logger)
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestWithComponent(t *testing.T) {
	logger := NewLogger("info")
	entry := WithComponent(logger, "orchestrator")
	assert.Equal(t, "orchestrator", entry.Data["component"])
}
