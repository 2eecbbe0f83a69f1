package domain

// Snapshot is one complete load of the five collections.
// It is read-only once built.
type Snapshot struct {
	Instructors   []Instructor
	Participants  []Participant
	Rooms         []Room
	Courses       []Course
	Registrations []Registration
}
