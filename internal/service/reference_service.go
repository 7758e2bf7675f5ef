package service

import "github.com/campusdesk/events-api/internal/models"

// ReferenceService serves the static buildings/venues and departments/staff
// catalog. The catalog is read-only reference data: the dashboard renders it
// into dropdowns and the scheduling service consults it when strict
// reference checks are enabled.
type ReferenceService struct {
	buildings   []models.Building
	departments []models.Department
}

// NewReferenceService loads the default campus catalog.
func NewReferenceService() *ReferenceService {
	return &ReferenceService{
		buildings:   models.DefaultBuildings(),
		departments: models.DefaultDepartments(),
	}
}

// Buildings lists the campus buildings with their venues.
func (s *ReferenceService) Buildings() []models.Building {
	return s.buildings
}

// Departments lists departments with their staff.
func (s *ReferenceService) Departments() []models.Department {
	return s.departments
}

// VenueExists reports whether the named venue belongs to the named building.
// Events reference both by display name, so the lookup is name-keyed.
func (s *ReferenceService) VenueExists(building, venue string) bool {
	for _, b := range s.buildings {
		if b.Name != building {
			continue
		}
		for _, v := range b.Venues {
			if v.Name == venue {
				return true
			}
		}
	}
	return false
}

// StaffExists reports whether a staff id appears in any department.
func (s *ReferenceService) StaffExists(id string) bool {
	for _, d := range s.departments {
		for _, st := range d.Staff {
			if st.ID == id {
				return true
			}
		}
	}
	return false
}
