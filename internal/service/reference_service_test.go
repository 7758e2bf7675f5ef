package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceServiceCatalog(t *testing.T) {
	svc := NewReferenceService()

	buildings := svc.Buildings()
	require.NotEmpty(t, buildings)
	assert.Equal(t, "Main Building", buildings[0].Name)
	require.NotEmpty(t, buildings[0].Venues)

	departments := svc.Departments()
	require.NotEmpty(t, departments)
	assert.Equal(t, "Computer Science", departments[0].Name)
	require.NotEmpty(t, departments[0].Staff)
}

func TestReferenceServiceVenueExists(t *testing.T) {
	svc := NewReferenceService()

	assert.True(t, svc.VenueExists("Main Building", "Main Auditorium"))
	assert.False(t, svc.VenueExists("Main Building", "Broom Closet"))
	// Venue names only count within their own building.
	assert.False(t, svc.VenueExists("Science Block", "Main Auditorium"))
	assert.False(t, svc.VenueExists("No Such Building", "Main Auditorium"))
}

func TestReferenceServiceStaffExists(t *testing.T) {
	svc := NewReferenceService()

	assert.True(t, svc.StaffExists("cs1"))
	assert.False(t, svc.StaffExists("nobody"))
}
