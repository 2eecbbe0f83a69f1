package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"course-dashboard/internal/dashboard"
)

// Keep header order EXACT; downstream imports match columns by position.
var courseHeader = []string{
	"COURSE_ID",
	"COURSE_TITLE",
	"STATUS",
	"START_DATE",
	"END_DATE",
	"INSTRUCTOR",
	"ROOM",
	"MAX_PARTICIPANTS",
	"PRICE_EUR",
	"REGISTRATIONS",
	"PAID",
	"OUTSTANDING",
	"REVENUE_EUR",
}

// WriteCourseCSV writes one row per course summary.
func WriteCourseCSV(w io.Writer, rows []dashboard.CourseSummary) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(courseHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(toCourseRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCourseCSVFile writes the export to outPath, creating its directory.
func WriteCourseCSVFile(outPath string, rows []dashboard.CourseSummary) error {
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: create dir: %w", err)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("export: create csv: %w", err)
	}
	if err := WriteCourseCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("export: write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close csv: %w", err)
	}
	return nil
}

func toCourseRow(r dashboard.CourseSummary) []string {
	f := r.Course.Fields

	maxParticipants := ""
	if f.MaxParticipants != nil {
		maxParticipants = strconv.Itoa(*f.MaxParticipants)
	}
	price := ""
	if f.Price != nil {
		price = money(*f.Price)
	}

	return []string{
		r.Course.ID,                            // COURSE_ID
		clean(deref(f.Title)),                  // COURSE_TITLE
		string(f.StatusOrDefault()),            // STATUS
		deref(f.StartDate),                     // START_DATE
		deref(f.EndDate),                       // END_DATE
		clean(r.Instructor),                    // INSTRUCTOR
		clean(r.Room),                          // ROOM
		maxParticipants,                        // MAX_PARTICIPANTS
		price,                                  // PRICE_EUR
		strconv.Itoa(r.Registrations),          // REGISTRATIONS
		strconv.Itoa(r.Paid),                   // PAID
		strconv.Itoa(r.Registrations - r.Paid), // OUTSTANDING
		money(r.Revenue),                       // REVENUE_EUR
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// clean flattens line breaks so each course stays on one physical line.
func clean(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
