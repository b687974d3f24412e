package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-08-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.August, Day: 1}, d)
	assert.Equal(t, "2025-08-01", d.String())

	_, err = ParseDate("2025-8-1")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2025-08-01T10:00:00Z")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		from string
		days int
		want string
	}{
		{"2025-08-01", 7, "2025-08-08"},
		{"2025-08-28", 7, "2025-09-04"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2025-02-28", 1, "2025-03-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2025-03-05", -7, "2025-02-26"},
		// Europe and US daylight-saving transitions.
		{"2025-03-29", 1, "2025-03-30"},
		{"2025-03-30", 1, "2025-03-31"},
		{"2025-10-25", 2, "2025-10-27"},
		{"2025-11-01", 3, "2025-11-04"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got := MustParseDate(tt.from).AddDays(tt.days)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	a := MustParseDate("2025-03-28")
	b := MustParseDate("2025-04-02")
	assert.Equal(t, 5, a.DaysUntil(b))
	assert.Equal(t, -5, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}

func TestDateOf_UsesWallClockDate(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 23:30 local on the night clocks go back is still Oct 26 locally.
	ts := time.Date(2025, time.October, 26, 23, 30, 0, 0, berlin)
	assert.Equal(t, "2025-10-26", DateOf(ts).String())
	assert.Equal(t, "2025-10-27", DateOf(ts).AddDays(1).String())
}

func TestDate_Compare(t *testing.T) {
	a := MustParseDate("2025-08-08")
	assert.True(t, a.Before(MustParseDate("2025-08-09")))
	assert.True(t, a.After(MustParseDate("2024-12-31")))
	assert.Equal(t, 0, a.Compare(NewDate(2025, time.August, 8)))
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}
	b, err := json.Marshal(wrapper{Date: MustParseDate("2025-08-10")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-08-10"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-08-17"}`), &w))
	assert.Equal(t, "2025-08-17", w.Date.String())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"17.08.2025"}`), &w))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2025-08-01"))
	assert.Equal(t, "2025-08-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
