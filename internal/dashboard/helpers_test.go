package dashboard

import (
	"course-dashboard/internal/domain"
)

const refBase = "https://my.living-apps.de/rest/apps/6996e47d450b71a5c6daee7a/records/"

func strp(s string) *string { return &s }

func boolp(b bool) *bool { return &b }

func floatp(f float64) *float64 { return &f }

func statusp(s domain.CourseStatus) *domain.CourseStatus { return &s }

func course(id string, mutate ...func(*domain.CourseFields)) domain.Course {
	c := domain.Course{ID: id}
	for _, m := range mutate {
		m(&c.Fields)
	}
	return c
}

func withTitle(t string) func(*domain.CourseFields) {
	return func(f *domain.CourseFields) { f.Title = strp(t) }
}

func withStart(s string) func(*domain.CourseFields) {
	return func(f *domain.CourseFields) { f.StartDate = strp(s) }
}

func withPrice(p float64) func(*domain.CourseFields) {
	return func(f *domain.CourseFields) { f.Price = floatp(p) }
}

func withStatus(s domain.CourseStatus) func(*domain.CourseFields) {
	return func(f *domain.CourseFields) { f.Status = statusp(s) }
}

func registration(id, courseID string, paid *bool, date string) domain.Registration {
	r := domain.Registration{ID: id}
	if courseID != "" {
		r.Fields.CourseRef = strp(refBase + courseID)
	}
	r.Fields.Paid = paid
	if date != "" {
		r.Fields.RegistrationDate = strp(date)
	}
	return r
}

func ids[F any](records []domain.Record[F]) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
