package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	const envKey = "SHELLFIX_TEST_ENV"
	const defaultValue = "default_value"

	os.Unsetenv(envKey)
	val := GetEnvOrDefault(envKey, defaultValue)
	assert.Equal(t, defaultValue, val, "should return default value when env is not set")

	expectedValue := "my_custom_value"
	os.Setenv(envKey, expectedValue)
	val = GetEnvOrDefault(envKey, defaultValue)
	assert.Equal(t, expectedValue, val, "should return env value when set")

	os.Unsetenv(envKey)
}

func TestGenerateUUID(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestParseSize(t *testing.T) {
	testCases := []struct {
		input    string
		expected int64
		hasError bool
	}{
		{"10MB", 10 * 1024 * 1024, false},
		{"1KB", 1024, false},
		{"2GB", 2 * 1024 * 1024 * 1024, false},
		{"512", 512, false},
		{"not-a-size", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSize(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
