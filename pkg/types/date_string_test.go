package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		for _, raw := range []string{"2026-01-01", "2026-12-31", "2025-02-28", "1999-06-15"} {
			ds, err := NewDateStringFromString(raw)
			require.NoError(t, err, "date %q should be valid", raw)
			assert.Equal(t, raw, ds.String())
		}
	})

	t.Run("invalid dates", func(t *testing.T) {
		for _, raw := range []string{
			"", "2024-13-40", "2026-00-10", "2026-01-00", "2026-01-32",
			"2026-1-5", "26-01-05", "2026/01/05", "tomorrow",
		} {
			_, err := NewDateStringFromString(raw)
			require.Error(t, err, "date %q should be rejected", raw)
			assert.ErrorIs(t, err, ErrInvalidDateString)
		}
	})

	// Календарная корректность не проверяется: формат валиден,
	// но 31 февраля как календарный день не существует
	t.Run("structurally valid non-calendar date", func(t *testing.T) {
		_, err := NewDateStringFromString("2025-02-31")
		assert.NoError(t, err)
	})
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2026-01-01").IsZero())
}
