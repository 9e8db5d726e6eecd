package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("wraps with context", func(t *testing.T) {
		err := Wrap(ErrCityNotFound, "looking up weather")
		require.Error(t, err)
		assert.True(t, Is(err, ErrCityNotFound))
		assert.Contains(t, err.Error(), "looking up weather")
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
		assert.NoError(t, Wrapf(nil, "context %s", "x"))
	})

	t.Run("wrapf formats", func(t *testing.T) {
		err := Wrapf(ErrToolNotFound, "tool %s", "get_weather")
		require.Error(t, err)
		assert.True(t, Is(err, ErrToolNotFound))
		assert.Contains(t, err.Error(), "tool get_weather")
	})
}

func TestDomainError(t *testing.T) {
	err := NewDomainError("CITY_NOT_FOUND", "no such city", ErrCityNotFound)
	assert.Contains(t, err.Error(), "CITY_NOT_FOUND")
	assert.True(t, Is(err, ErrCityNotFound))

	var domainErr *DomainError
	require.True(t, As(err, &domainErr))
	assert.Equal(t, "CITY_NOT_FOUND", domainErr.Code)
}
