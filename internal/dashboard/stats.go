package dashboard

import "course-dashboard/internal/domain"

// StatusCounts always holds the four known statuses.
type StatusCounts map[domain.CourseStatus]int

// CountByStatus tallies courses into the known status buckets.
// Unknown and absent statuses are not counted.
func CountByStatus(courses []domain.Course) StatusCounts {
	out := make(StatusCounts, len(domain.CourseStatuses))
	for _, s := range domain.CourseStatuses {
		out[s] = 0
	}
	for _, c := range courses {
		if c.Fields.Status == nil || !c.Fields.Status.Known() {
			continue
		}
		out[*c.Fields.Status]++
	}
	return out
}

// Payments is the paid/outstanding split of registrations.
type Payments struct {
	Paid        int `json:"paid"`
	Outstanding int `json:"outstanding"`
}

// Total is Paid + Outstanding, i.e. the number of registrations.
func (p Payments) Total() int { return p.Paid + p.Outstanding }

// PaidPercent is the paid share in percent, 0 when there are no registrations.
func (p Payments) PaidPercent() float64 { return percent(p.Paid, p.Total()) }

// OutstandingPercent is the outstanding share in percent.
func (p Payments) OutstandingPercent() float64 { return percent(p.Outstanding, p.Total()) }

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// PaymentSplit counts registrations with paid == true; everything else,
// including an absent flag, is outstanding.
func PaymentSplit(regs []domain.Registration) Payments {
	var p Payments
	for _, r := range regs {
		if r.Fields.IsPaid() {
			p.Paid++
		}
	}
	p.Outstanding = len(regs) - p.Paid
	return p
}

// TotalRevenue sums price × paid registrations per course.
// Courses without a price contribute nothing; the result does not depend on
// registration order.
func TotalRevenue(courses []domain.Course, regs []domain.Registration) float64 {
	paid := make(map[string]int, len(courses))
	for _, r := range regs {
		if !r.Fields.IsPaid() {
			continue
		}
		if id, ok := ExtractReferencedID(r.Fields.CourseRef); ok {
			paid[id]++
		}
	}

	var total float64
	for _, c := range courses {
		if c.Fields.Price == nil {
			continue
		}
		total += *c.Fields.Price * float64(paid[c.ID])
	}
	return total
}
