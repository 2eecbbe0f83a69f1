package dashboard

import (
	"course-dashboard/internal/domain"
)

// HistogramLimit caps the registrations-per-course chart.
const HistogramLimit = 8

const (
	labelMaxRunes = 16
	labelCutRunes = 14
)

// CourseCount is one bar of the registrations-per-course chart.
type CourseCount struct {
	Course domain.Course `json:"course"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
}

// RegistrationsPerCourse counts registrations per course, in course order,
// truncated to HistogramLimit. Registrations that point to no known course
// are dropped.
func RegistrationsPerCourse(courses []domain.Course, regs []domain.Registration) []CourseCount {
	counts := countByCourse(regs)

	n := len(courses)
	if n > HistogramLimit {
		n = HistogramLimit
	}
	out := make([]CourseCount, 0, n)
	for _, c := range courses[:n] {
		out = append(out, CourseCount{
			Course: c,
			Label:  ShortLabel(c.Fields.Title),
			Count:  counts[c.ID],
		})
	}
	return out
}

func countByCourse(regs []domain.Registration) map[string]int {
	counts := make(map[string]int)
	for _, r := range regs {
		if id, ok := ExtractReferencedID(r.Fields.CourseRef); ok {
			counts[id]++
		}
	}
	return counts
}

// ShortLabel shortens a course title for chart axes.
func ShortLabel(title *string) string {
	if title == nil || *title == "" {
		return UnknownName
	}
	r := []rune(*title)
	if len(r) > labelMaxRunes {
		return string(r[:labelCutRunes]) + "…"
	}
	return *title
}
