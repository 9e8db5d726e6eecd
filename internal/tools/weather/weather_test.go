package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citypulse/pkg/errors"
)

func TestLookup(t *testing.T) {
	t.Run("supported cities", func(t *testing.T) {
		for _, city := range []string{"New York", "San Francisco", "London"} {
			report, ok := Lookup(city)
			require.True(t, ok, "expected %s to be supported", city)
			assert.Equal(t, city, report.City)
			assert.NotEmpty(t, report.Condition)
			assert.NotZero(t, report.TempF)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		report, ok := Lookup("nEw YoRk")
		require.True(t, ok)
		assert.Equal(t, "New York", report.City)

		_, ok = Lookup("  london ")
		assert.True(t, ok)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, ok := Lookup("Atlantis")
		assert.False(t, ok)
	})
}

func TestReportText(t *testing.T) {
	report, ok := Lookup("New York")
	require.True(t, ok)
	assert.Equal(t,
		"The weather in New York is sunny with a temperature of 25 degrees Celsius (77 degrees Fahrenheit).",
		report.Text(),
	)
}

func TestHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("success result", func(t *testing.T) {
		result, err := Handler(ctx, map[string]interface{}{"city": "London"})
		require.NoError(t, err)
		assert.Equal(t, "success", result["status"])
		assert.Contains(t, result["report"], "rainy")
		assert.Contains(t, result["report"], "12 degrees Celsius")
	})

	t.Run("unknown city is a structured error, not a failure", func(t *testing.T) {
		result, err := Handler(ctx, map[string]interface{}{"city": "Atlantis"})
		require.NoError(t, err)
		assert.Equal(t, "error", result["status"])
		assert.Contains(t, result["error_message"], "Atlantis")
	})

	t.Run("missing city argument", func(t *testing.T) {
		_, err := Handler(ctx, map[string]interface{}{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})
}

func TestCities(t *testing.T) {
	assert.Equal(t, []string{"London", "New York", "San Francisco"}, Cities())
}
