package domain

// CourseStatus is the lifecycle state stored on a course record.
// Values are the record service's wire values.
type CourseStatus string

const (
	StatusPlanned   CourseStatus = "geplant"
	StatusActive    CourseStatus = "aktiv"
	StatusCompleted CourseStatus = "abgeschlossen"
	StatusCancelled CourseStatus = "abgesagt"
)

// CourseStatuses lists the known statuses in display order.
var CourseStatuses = []CourseStatus{StatusPlanned, StatusActive, StatusCompleted, StatusCancelled}

// Known reports whether s is one of the four fixed statuses.
func (s CourseStatus) Known() bool {
	switch s {
	case StatusPlanned, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type CourseFields struct {
	Title           *string       `json:"titel,omitempty"`
	Description     *string       `json:"beschreibung,omitempty"`
	StartDate       *string       `json:"startdatum,omitempty"` // YYYY-MM-DD or ISO
	EndDate         *string       `json:"enddatum,omitempty"`
	MaxParticipants *int          `json:"max_teilnehmer,omitempty"`
	Price           *float64      `json:"preis,omitempty"`
	InstructorRef   *string       `json:"dozent,omitempty"` // URL to an instructor record
	RoomRef         *string       `json:"raum,omitempty"`   // URL to a room record
	Status          *CourseStatus `json:"status,omitempty"`
}

// StatusOrDefault is the status to display; absent means planned.
// Counting code must not use it.
func (f CourseFields) StatusOrDefault() CourseStatus {
	if f.Status == nil || *f.Status == "" {
		return StatusPlanned
	}
	return *f.Status
}

type Course = Record[CourseFields]
