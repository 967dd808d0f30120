package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_FORMAT", "")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BAI_CSV_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("BAI_CSV_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BAI_CSV_TEST_MISSING", "fallback"))
}
