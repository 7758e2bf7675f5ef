package models

// Venue is a bookable room or hall inside a building.
type Venue struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
}

// Building groups venues for the booking dropdowns.
type Building struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Venues []Venue `json:"venues"`
}

// Staff is a member of a department available for event coordination.
type Staff struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Department groups staff for the invite dropdowns.
type Department struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Staff []Staff `json:"staff"`
}

// DefaultBuildings returns the campus venue catalog.
func DefaultBuildings() []Building {
	return []Building{
		{
			ID:   "main",
			Name: "Main Building",
			Venues: []Venue{
				{ID: "main-audi", Name: "Main Auditorium", Capacity: 500, Facilities: []string{"Stage", "Sound System", "Projector"}},
				{ID: "conference-hall", Name: "Conference Hall", Capacity: 200, Facilities: []string{"Projector", "Video Conferencing"}},
			},
		},
		{
			ID:   "science",
			Name: "Science Block",
			Venues: []Venue{
				{ID: "physics-lab", Name: "Physics Lab", Capacity: 100, Facilities: []string{"Lab Equipment", "Smart Board"}},
				{ID: "chemistry-lab", Name: "Chemistry Lab", Capacity: 100, Facilities: []string{"Lab Equipment", "Safety Equipment"}},
				{ID: "seminar-hall", Name: "Seminar Hall", Capacity: 150, Facilities: []string{"Projector", "Sound System"}},
			},
		},
		{
			ID:   "tech",
			Name: "Technology Block",
			Venues: []Venue{
				{ID: "computer-lab", Name: "Computer Lab", Capacity: 120, Facilities: []string{"Computers", "Internet", "Projector"}},
				{ID: "innovation-hub", Name: "Innovation Hub", Capacity: 80, Facilities: []string{"3D Printer", "Workshop Tools"}},
			},
		},
		{
			ID:   "library",
			Name: "Library Building",
			Venues: []Venue{
				{ID: "digital-lab", Name: "Digital Library", Capacity: 100, Facilities: []string{"Computers", "Online Resources"}},
				{ID: "discussion-room", Name: "Discussion Room", Capacity: 30, Facilities: []string{"Whiteboard", "Round Table"}},
			},
		},
	}
}

// DefaultDepartments returns the staff directory used for coordinator invites.
func DefaultDepartments() []Department {
	return []Department{
		{
			ID:   "cs",
			Name: "Computer Science",
			Staff: []Staff{
				{ID: "cs1", Name: "Dr. John Smith", Role: "Professor", Email: "john.smith@university.edu"},
				{ID: "cs2", Name: "Dr. Sarah Johnson", Role: "Associate Professor", Email: "sarah.j@university.edu"},
			},
		},
		{
			ID:   "physics",
			Name: "Physics",
			Staff: []Staff{
				{ID: "ph1", Name: "Dr. Michael Brown", Role: "Professor", Email: "m.brown@university.edu"},
				{ID: "ph2", Name: "Dr. Emily White", Role: "Assistant Professor", Email: "e.white@university.edu"},
			},
		},
		{
			ID:   "maths",
			Name: "Mathematics",
			Staff: []Staff{
				{ID: "ma1", Name: "Dr. Robert Wilson", Role: "Professor", Email: "r.wilson@university.edu"},
				{ID: "ma2", Name: "Dr. Lisa Chen", Role: "Associate Professor", Email: "l.chen@university.edu"},
			},
		},
	}
}
