package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday_UsesClockLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 23:30 UTC on Aug 7 is already Aug 8 in Berlin.
	c := &MockClock{FixedNow: time.Date(2025, 8, 7, 23, 30, 0, 0, time.UTC).In(berlin)}
	assert.Equal(t, "2025-08-08", Today(c).String())

	c.SetNow(time.Date(2025, 8, 7, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, "2025-08-07", Today(c).String())
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = LoadLocation("Not/AZone")
	assert.Error(t, err)
}

func TestSystemClock(t *testing.T) {
	c := SystemClock{Location: time.UTC}
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.WithinDuration(t, time.Now(), SystemClock{}.Now(), time.Minute)
}
