package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"course-dashboard/internal/dashboard"
	"course-dashboard/internal/domain"
)

const (
	noCourses       = "No courses yet."
	noUpcoming      = "No upcoming courses."
	noRegistrations = "No registrations yet."
)

var statusLabels = map[domain.CourseStatus]string{
	domain.StatusPlanned:   "Planned",
	domain.StatusActive:    "Active",
	domain.StatusCompleted: "Completed",
	domain.StatusCancelled: "Cancelled",
}

// StatusLabel is the display label for a status; unknown values print as-is.
func StatusLabel(s domain.CourseStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// FormatPrice renders an optional price as "12.50 €", or UnknownName.
func FormatPrice(p *float64) string {
	if p == nil {
		return dashboard.UnknownName
	}
	return fmt.Sprintf("%.2f €", *p)
}

// FormatDate renders an optional date as dd.mm.yyyy in loc, or UnknownName.
func FormatDate(s *string, loc *time.Location) string {
	t, ok := domain.ParseDatePtr(s, loc)
	if !ok {
		return dashboard.UnknownName
	}
	return t.Format("02.01.2006")
}

// WriteText writes the plain-text dashboard.
func WriteText(w io.Writer, vm dashboard.ViewModel) error {
	loc := vm.GeneratedAt.Location()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p := func(format string, args ...any) {
		fmt.Fprintf(tw, format, args...)
	}

	p("Course dashboard\t%s\n", vm.GeneratedAt.Format("02.01.2006 15:04"))
	p("\n")

	p("Courses\t%d\n", vm.Counts.Courses)
	p("Instructors\t%d\n", vm.Counts.Instructors)
	p("Participants\t%d\n", vm.Counts.Participants)
	p("Rooms\t%d\n", vm.Counts.Rooms)
	p("Registrations\t%d\n", vm.Counts.Registrations)
	p("Revenue\t%s\n", FormatPrice(&vm.Revenue))
	p("\n")

	p("Status\n")
	for _, s := range domain.CourseStatuses {
		p("  %s\t%d\n", StatusLabel(s), vm.StatusCounts[s])
	}
	p("\n")

	p("Payments\n")
	p("  Paid\t%d\t%.0f%%\n", vm.Payments.Paid, vm.Payments.PaidPercent())
	p("  Outstanding\t%d\t%.0f%%\n", vm.Payments.Outstanding, vm.Payments.OutstandingPercent())
	p("\n")

	p("Registrations per course\n")
	if len(vm.RegistrationsPerCourse) == 0 {
		p("  %s\n", noCourses)
	}
	for _, c := range vm.RegistrationsPerCourse {
		p("  %s\t%d\t%s\n", c.Label, c.Count, strings.Repeat("#", c.Count))
	}
	p("\n")

	p("Upcoming courses\n")
	if len(vm.UpcomingCourses) == 0 {
		p("  %s\n", noUpcoming)
	}
	for _, c := range vm.UpcomingCourses {
		title := dashboard.UnknownName
		if c.Fields.Title != nil && *c.Fields.Title != "" {
			title = *c.Fields.Title
		}
		p("  %s\t%s\t%s\t%s\n", FormatDate(c.Fields.StartDate, loc), title,
			StatusLabel(c.Fields.StatusOrDefault()), FormatPrice(c.Fields.Price))
	}
	p("\n")

	p("Recent registrations\n")
	if len(vm.RecentRegistrations) == 0 {
		p("  %s\n", noRegistrations)
	}
	for _, r := range vm.RecentRegistrations {
		badge := "open"
		if r.Paid {
			badge = "paid"
		}
		p("  %s\t%s\t%s\t%s\n", FormatDate(r.Registration.Fields.RegistrationDate, loc),
			r.ParticipantName, r.CourseTitle, badge)
	}

	return tw.Flush()
}
