package timezone_test

import (
	"rentdesk/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow_InAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestFreeze(t *testing.T) {
	pickup := time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)

	restore := timezone.Freeze(pickup)
	assert.True(t, timezone.Now().Equal(pickup))

	restore()
	assert.False(t, timezone.Now().Equal(pickup))
}

func TestParseAndFormat_RoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02 15:04", "2025-06-14 09:30")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-06-14 09:30", timezone.Format(parsed, "2006-01-02 15:04"))

	_, err = timezone.Parse("2006-01-02", "14/06/2025")
	assert.Error(t, err)
}
