package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premium-barber/booking-service/pkg/types"
)

func testDetector(t *testing.T, buffer int) *ConflictDetector {
	t.Helper()
	catalog, err := NewServiceCatalog(DefaultServices())
	require.NoError(t, err)
	return NewConflictDetector(catalog, buffer)
}

func TestConflicts_BufferSeparatesBackToBackBookings(t *testing.T) {
	d := testDetector(t, 15)

	haircut := SlotRequest{StartTime: "09:00", Service: "Haircut"} // ends 09:45

	// 10:00 leaves exactly the 15 minute buffer after 09:45: no conflict.
	ok, err := d.Conflicts(SlotRequest{StartTime: "10:00", Service: "Beard Trim"}, haircut)
	require.NoError(t, err)
	assert.False(t, ok)

	// 09:30 starts inside the haircut itself.
	ok, err = d.Conflicts(SlotRequest{StartTime: "09:30", Service: "Beard Trim"}, haircut)
	require.NoError(t, err)
	assert.True(t, ok)

	// 09:50 starts after the haircut ends but inside its buffer.
	ok, err = d.Conflicts(SlotRequest{StartTime: "09:50", Service: "Beard Trim"}, haircut)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConflicts_IdenticalStartsAlwaysCollide(t *testing.T) {
	d := testDetector(t, 0)

	ok, err := d.Conflicts(
		SlotRequest{StartTime: "10:00", Service: "Haircut"},
		SlotRequest{StartTime: "10:00", Service: "Face Massage"},
	)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConflicts_IsSymmetric(t *testing.T) {
	d := testDetector(t, 15)

	pairs := []struct {
		a, b SlotRequest
	}{
		{SlotRequest{"09:00", "Haircut"}, SlotRequest{"09:30", "Beard Trim"}},
		{SlotRequest{"09:00", "Haircut"}, SlotRequest{"10:00", "Beard Trim"}},
		{SlotRequest{"10:00", "Premium Package"}, SlotRequest{"11:00", "Hot Shave"}},
		{SlotRequest{"14:00", "Head Massage"}, SlotRequest{"17:00", "Haircut"}},
	}

	for _, p := range pairs {
		ab, err := d.Conflicts(p.a, p.b)
		require.NoError(t, err)
		ba, err := d.Conflicts(p.b, p.a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "%v vs %v", p.a, p.b)
	}
}

func TestConflicts_DisjointWindowsDoNotCollide(t *testing.T) {
	d := testDetector(t, 15)

	ok, err := d.Conflicts(
		SlotRequest{StartTime: "09:00", Service: "Face Massage"}, // ends 09:25
		SlotRequest{StartTime: "16:00", Service: "Haircut"},
	)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConflicts_LongServiceSpansMultipleSlots(t *testing.T) {
	d := testDetector(t, 15)

	premium := SlotRequest{StartTime: "10:00", Service: "Premium Package"} // ends 12:00

	for _, start := range []types.TimeString{"10:00", "11:00", "12:00"} {
		ok, err := d.Conflicts(SlotRequest{StartTime: start, Service: "Haircut"}, premium)
		require.NoError(t, err)
		assert.True(t, ok, "start %s", start)
	}

	ok, err := d.Conflicts(SlotRequest{StartTime: "14:00", Service: "Haircut"}, premium)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConflicts_UnknownServiceIsAnError(t *testing.T) {
	d := testDetector(t, 15)

	_, err := d.Conflicts(
		SlotRequest{StartTime: "10:00", Service: "Dragon Taming"},
		SlotRequest{StartTime: "10:00", Service: "Haircut"},
	)
	assert.Error(t, err)
}

func TestConflictsWithInterval_RejectsNonPositiveDuration(t *testing.T) {
	d := testDetector(t, 15)

	_, err := d.ConflictsWithInterval(SlotRequest{StartTime: "10:00", Service: "Haircut"}, "10:00", 0)
	assert.Error(t, err)
}
