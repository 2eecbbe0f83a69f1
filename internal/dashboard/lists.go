package dashboard

import (
	"sort"
	"time"

	"course-dashboard/internal/domain"
)

// RecentLimit caps the recent registrations list.
const RecentLimit = 5

// UpcomingCourses returns courses starting after the start of now's day
// (or on it, when opts.UpcomingIncludeToday), earliest first. Courses with a
// missing or unparseable start date are left out. Ties keep collection order.
func UpcomingCourses(courses []domain.Course, now time.Time, opts Options) []domain.Course {
	opts = opts.withDefaults()
	today := domain.StartOfDay(now)

	type dated struct {
		course domain.Course
		start  time.Time
	}
	var kept []dated
	for _, c := range courses {
		start, ok := domain.ParseDatePtr(c.Fields.StartDate, now.Location())
		if !ok {
			continue
		}
		if start.After(today) || (opts.UpcomingIncludeToday && start.Equal(today)) {
			kept = append(kept, dated{course: c, start: start})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].start.Before(kept[j].start)
	})

	if len(kept) > opts.UpcomingLimit {
		kept = kept[:opts.UpcomingLimit]
	}
	out := make([]domain.Course, 0, len(kept))
	for _, d := range kept {
		out = append(out, d.course)
	}
	return out
}

// RecentRegistrations returns the newest registrations first, at most
// RecentLimit. Missing or unparseable dates sort last; ties keep collection order.
func RecentRegistrations(regs []domain.Registration, loc *time.Location) []domain.Registration {
	type dated struct {
		reg   domain.Registration
		at    time.Time
		known bool
	}
	all := make([]dated, 0, len(regs))
	for _, r := range regs {
		at, ok := domain.ParseDatePtr(r.Fields.RegistrationDate, loc)
		all = append(all, dated{reg: r, at: at, known: ok})
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.known != b.known {
			return a.known
		}
		return a.at.After(b.at)
	})

	if len(all) > RecentLimit {
		all = all[:RecentLimit]
	}
	out := make([]domain.Registration, 0, len(all))
	for _, d := range all {
		out = append(out, d.reg)
	}
	return out
}
