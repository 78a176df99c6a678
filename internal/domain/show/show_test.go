package show

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShow(t *testing.T) {
	showDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid show", func(t *testing.T) {
		s, err := NewShow("August Show", showDate, PlatformWhatnot)
		require.NoError(t, err)
		assert.Equal(t, "August Show", s.Name)
		assert.Equal(t, StatusPlanned, s.Status)
		assert.False(t, s.IsDeleted())
		assert.NotEqual(t, s.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewShow("", showDate, PlatformWhatnot)
		assert.Error(t, err)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := NewShow("Show", time.Time{}, PlatformWhatnot)
		assert.Error(t, err)
	})

	t.Run("invalid platform", func(t *testing.T) {
		_, err := NewShow("Show", showDate, Platform("TIKTOK"))
		assert.Error(t, err)
	})
}

func TestShow_StatusTransitions(t *testing.T) {
	showDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("complete", func(t *testing.T) {
		s, _ := NewShow("Show", showDate, PlatformManual)
		require.NoError(t, s.Complete())
		assert.Equal(t, StatusCompleted, s.Status)
	})

	t.Run("cancel", func(t *testing.T) {
		s, _ := NewShow("Show", showDate, PlatformManual)
		require.NoError(t, s.Cancel())
		assert.Equal(t, StatusCancelled, s.Status)
	})

	t.Run("cancelled show cannot be completed", func(t *testing.T) {
		s, _ := NewShow("Show", showDate, PlatformManual)
		require.NoError(t, s.Cancel())
		assert.Error(t, s.Complete())
	})

	t.Run("completed show cannot be cancelled", func(t *testing.T) {
		s, _ := NewShow("Show", showDate, PlatformManual)
		require.NoError(t, s.Complete())
		assert.Error(t, s.Cancel())
	})
}

func TestPlatform_IsValid(t *testing.T) {
	assert.True(t, PlatformWhatnot.IsValid())
	assert.True(t, PlatformInstagram.IsValid())
	assert.True(t, PlatformManual.IsValid())
	assert.False(t, Platform("EBAY").IsValid())
	assert.False(t, Platform("").IsValid())
}

func TestShow_MarkDeleted(t *testing.T) {
	s, _ := NewShow("Show", time.Now(), PlatformWhatnot)
	s.MarkDeleted()
	assert.True(t, s.IsDeleted())
	require.NotNil(t, s.DeletedAt)
}
