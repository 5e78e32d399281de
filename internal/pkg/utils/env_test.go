package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Run("Reads Set Variable", func(t *testing.T) {
		t.Setenv("HRA_TEST_STRING", "value")
		assert.Equal(t, "value", GetEnvString("HRA_TEST_STRING", "fallback"))
	})

	t.Run("Falls Back When Unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("HRA_TEST_STRING_UNSET", "fallback"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("Parses Set Variable", func(t *testing.T) {
		t.Setenv("HRA_TEST_INT", "42")
		assert.Equal(t, 42, GetEnvInt("HRA_TEST_INT", 7))
	})

	t.Run("Falls Back On Garbage", func(t *testing.T) {
		t.Setenv("HRA_TEST_INT", "not-a-number")
		assert.Equal(t, 7, GetEnvInt("HRA_TEST_INT", 7))
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Run("Parses Set Variable", func(t *testing.T) {
		t.Setenv("HRA_TEST_BOOL", "true")
		assert.True(t, GetEnvBool("HRA_TEST_BOOL", false))
	})

	t.Run("Falls Back On Garbage", func(t *testing.T) {
		t.Setenv("HRA_TEST_BOOL", "yep")
		assert.False(t, GetEnvBool("HRA_TEST_BOOL", false))
	})
}
