package dashboard

import "course-dashboard/internal/domain"

// CourseSummary is one course with its resolved instructor and room and its
// registration figures. It backs the course export.
type CourseSummary struct {
	Course        domain.Course
	Instructor    string
	Room          string
	Registrations int
	Paid          int
	Revenue       float64
}

// CourseSummaries returns one summary per course, in course order.
func CourseSummaries(s domain.Snapshot) []CourseSummary {
	instructors := NewNameIndex(s.Instructors, instructorName)
	rooms := NewNameIndex(s.Rooms, roomName)

	total := countByCourse(s.Registrations)
	paid := make(map[string]int, len(s.Courses))
	for _, r := range s.Registrations {
		if !r.Fields.IsPaid() {
			continue
		}
		if id, ok := ExtractReferencedID(r.Fields.CourseRef); ok {
			paid[id]++
		}
	}

	out := make([]CourseSummary, 0, len(s.Courses))
	for _, c := range s.Courses {
		sum := CourseSummary{
			Course:        c,
			Instructor:    instructors.ResolveRef(c.Fields.InstructorRef),
			Room:          rooms.ResolveRef(c.Fields.RoomRef),
			Registrations: total[c.ID],
			Paid:          paid[c.ID],
		}
		if c.Fields.Price != nil {
			sum.Revenue = *c.Fields.Price * float64(sum.Paid)
		}
		out = append(out, sum)
	}
	return out
}

func instructorName(f domain.InstructorFields) *string { return f.Name }

func roomName(f domain.RoomFields) *string { return f.RoomName }
