package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsdesk/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING_SET", "value")

	assert.Equal(t, "value", config.GetEnvString("TEST_STRING_SET", "default"))
	assert.Equal(t, "default", config.GetEnvString("TEST_STRING_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "valid integer", value: "42", expected: 42},
		{name: "negative integer", value: "-7", expected: -7},
		{name: "invalid integer falls back", value: "not-a-number", expected: 10},
		{name: "empty falls back", value: "", expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.expected, config.GetEnvInt("TEST_INT", 10))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.5")
	assert.Equal(t, 0.5, config.GetEnvFloat("TEST_FLOAT", 1.0))

	t.Setenv("TEST_FLOAT", "garbage")
	assert.Equal(t, 1.0, config.GetEnvFloat("TEST_FLOAT", 1.0))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "1", expected: true},
		{value: "true", expected: true},
		{value: "False", expected: false},
		{value: "0", expected: false},
		{value: "yes", expected: true}, // invalid, falls back to default
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, config.GetEnvBool("TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, config.GetEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "ninety seconds")
	assert.Equal(t, time.Minute, config.GetEnvDuration("TEST_DURATION", time.Minute))
}
