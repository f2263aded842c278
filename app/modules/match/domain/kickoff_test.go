package matchdomain

import (
	"testing"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKickoffParser(t *testing.T) {
	// Wednesday.
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	p := NewKickoffParser()

	t.Run("rfc3339 passes through", func(t *testing.T) {
		got, err := p.Parse("2026-11-01T15:00:00+01:00", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 11, 1, 14, 0, 0, 0, time.UTC), got)
	})

	t.Run("relative day with clock time", func(t *testing.T) {
		got, err := p.Parse("tomorrow at 3pm", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 15, 15, 0, 0, 0, time.UTC), got)
	})

	t.Run("zone is applied", func(t *testing.T) {
		got, err := p.Parse("tomorrow at 3pm", "Europe/Berlin", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 15, 13, 0, 0, 0, time.UTC), got)
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := p.Parse("tomorrow at 3pm", "Mars/Olympus", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("gibberish", func(t *testing.T) {
		_, err := p.Parse("xyzzy plugh", "", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := p.Parse("  ", "", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
