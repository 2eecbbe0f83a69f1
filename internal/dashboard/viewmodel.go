package dashboard

import (
	"time"

	"course-dashboard/internal/domain"
)

// Counts are the entity totals shown on the KPI cards.
type Counts struct {
	Instructors   int `json:"instructors"`
	Participants  int `json:"participants"`
	Rooms         int `json:"rooms"`
	Courses       int `json:"courses"`
	Registrations int `json:"registrations"`
}

// RecentRegistration is a row of the recent registrations table with its
// references already resolved to names.
type RecentRegistration struct {
	Registration    domain.Registration `json:"registration"`
	ParticipantName string              `json:"participant_name"`
	CourseTitle     string              `json:"course_title"`
	Paid            bool                `json:"paid"`
}

// ViewModel is everything the dashboard renders.
type ViewModel struct {
	GeneratedAt            time.Time            `json:"generated_at"`
	Counts                 Counts               `json:"counts"`
	StatusCounts           StatusCounts         `json:"status_counts"`
	Payments               Payments             `json:"payments"`
	RegistrationsPerCourse []CourseCount        `json:"registrations_per_course"`
	UpcomingCourses        []domain.Course      `json:"upcoming_courses"`
	RecentRegistrations    []RecentRegistration `json:"recent_registrations"`
	Revenue                float64              `json:"revenue"`
}

// Build derives the view model from one snapshot. It is pure: the same
// snapshot, now and opts always give the same result.
func Build(s domain.Snapshot, now time.Time, opts Options) ViewModel {
	participants := NewNameIndex(s.Participants, participantName)
	courses := NewNameIndex(s.Courses, courseTitle)

	recent := RecentRegistrations(s.Registrations, now.Location())
	rows := make([]RecentRegistration, 0, len(recent))
	for _, r := range recent {
		rows = append(rows, RecentRegistration{
			Registration:    r,
			ParticipantName: participants.ResolveRef(r.Fields.ParticipantRef),
			CourseTitle:     courses.ResolveRef(r.Fields.CourseRef),
			Paid:            r.Fields.IsPaid(),
		})
	}

	return ViewModel{
		GeneratedAt: now,
		Counts: Counts{
			Instructors:   len(s.Instructors),
			Participants:  len(s.Participants),
			Rooms:         len(s.Rooms),
			Courses:       len(s.Courses),
			Registrations: len(s.Registrations),
		},
		StatusCounts:           CountByStatus(s.Courses),
		Payments:               PaymentSplit(s.Registrations),
		RegistrationsPerCourse: RegistrationsPerCourse(s.Courses, s.Registrations),
		UpcomingCourses:        UpcomingCourses(s.Courses, now, opts),
		RecentRegistrations:    rows,
		Revenue:                TotalRevenue(s.Courses, s.Registrations),
	}
}
