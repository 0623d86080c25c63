package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultServicesBuildAValidCatalog(t *testing.T) {
	catalog, err := NewServiceCatalog(DefaultServices())
	require.NoError(t, err)

	assert.Len(t, catalog.Names(), 8)

	def, ok := catalog.Lookup("Haircut")
	require.True(t, ok)
	assert.Equal(t, 45, def.DurationMinutes)
	assert.Equal(t, int64(390000), def.PriceMinorUnits)
	assert.Equal(t, CategoryHaircut, def.Category)
}

func TestLookup_UnknownService(t *testing.T) {
	catalog, err := NewServiceCatalog(DefaultServices())
	require.NoError(t, err)

	_, ok := catalog.Lookup("Dragon Taming")
	assert.False(t, ok)
	assert.False(t, catalog.Contains("Dragon Taming"))
}

func TestNewServiceCatalog_RejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		defs []ServiceDefinition
	}{
		{"empty catalog", nil},
		{"empty name", []ServiceDefinition{{Name: "", DurationMinutes: 30, Category: CategoryHaircut}}},
		{"duplicate name", []ServiceDefinition{
			{Name: "Haircut", DurationMinutes: 45, PriceMinorUnits: 1, Category: CategoryHaircut},
			{Name: "Haircut", DurationMinutes: 30, PriceMinorUnits: 1, Category: CategoryHaircut},
		}},
		{"zero duration", []ServiceDefinition{{Name: "X", DurationMinutes: 0, Category: CategoryHaircut}}},
		{"negative price", []ServiceDefinition{{Name: "X", DurationMinutes: 30, PriceMinorUnits: -1, Category: CategoryHaircut}}},
		{"unknown category", []ServiceDefinition{{Name: "X", DurationMinutes: 30, Category: "laser"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewServiceCatalog(tc.defs)
			assert.Error(t, err)
		})
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusUpcoming, StatusCompleted, true},
		{StatusUpcoming, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusCancelled, StatusUpcoming, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusUpcoming, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusUpcoming, StatusConfirmed, false},
	}

	for _, tc := range cases {
		b := Booking{Status: tc.from}
		assert.Equal(t, tc.allowed, b.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusUpcoming}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}
