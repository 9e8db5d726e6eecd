package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citypulse/pkg/errors"
)

func fixedClock() Clock {
	// 2024-07-01 12:00:00 UTC
	instant := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return instant }
}

func TestZone(t *testing.T) {
	z, ok := Zone("Tokyo")
	require.True(t, ok)
	assert.Equal(t, "Asia/Tokyo", z)

	z, ok = Zone("  new york  ")
	require.True(t, ok)
	assert.Equal(t, "America/New_York", z)

	_, ok = Zone("Atlantis")
	assert.False(t, ok)
}

func TestReport(t *testing.T) {
	report, known, err := Report(fixedClock(), "Tokyo")
	require.NoError(t, err)
	require.True(t, known)
	assert.Equal(t, "The current time in Tokyo is 2024-07-01 21:00:00 JST+0900", report)

	report, known, err = Report(fixedClock(), "london")
	require.NoError(t, err)
	require.True(t, known)
	assert.Equal(t, "The current time in London is 2024-07-01 13:00:00 BST+0100", report)

	_, known, err = Report(fixedClock(), "Atlantis")
	require.NoError(t, err)
	assert.False(t, known)
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(fixedClock())

	t.Run("success", func(t *testing.T) {
		result, err := handler(context.Background(), map[string]interface{}{"city": "Paris"})
		require.NoError(t, err)
		assert.Equal(t, "success", result["status"])
		assert.Equal(t, "The current time in Paris is 2024-07-01 14:00:00 CEST+0200", result["report"])
	})

	t.Run("unknown city", func(t *testing.T) {
		result, err := handler(context.Background(), map[string]interface{}{"city": "Atlantis"})
		require.NoError(t, err)
		assert.Equal(t, "error", result["status"])
		assert.Equal(t, "Sorry, I don't have timezone information for Atlantis.", result["error_message"])
	})

	t.Run("missing city", func(t *testing.T) {
		_, err := handler(context.Background(), map[string]interface{}{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})
}

func TestCities(t *testing.T) {
	assert.Equal(t, []string{"London", "New York", "Paris", "San Francisco", "Tokyo"}, Cities())
}
