package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	cases := []struct {
		in   TimeString
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := tc.in.Minutes()
		require.NoError(t, err, "%s", tc.in)
		assert.Equal(t, tc.want, got, "%s", tc.in)
	}
}

func TestMinutes_InvalidInputs(t *testing.T) {
	for _, in := range []TimeString{"", "9:00", "09:0", "24:00", "09:60", "ab:cd", "09-00"} {
		_, err := in.Minutes()
		assert.Error(t, err, "%q should not parse", in)
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)

	got, err = TimeString("09:00").AddMinutes(135)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)
}

func TestAddMinutes_PastMidnightIsAnError(t *testing.T) {
	_, err := TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)
}

func TestIsBeforeAndIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("bad").IsBefore("10:00"), "invalid values compare as not-before")
}

func TestNewTimeString(t *testing.T) {
	got := NewTimeString(time.Date(2026, 3, 14, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), got)
}

func TestScan_TruncatesSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("14:30:00")))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestValue_RejectsInvalid(t *testing.T) {
	_, err := TimeString("25:00").Value()
	assert.Error(t, err)

	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)
}
