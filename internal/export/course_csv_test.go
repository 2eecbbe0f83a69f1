package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"course-dashboard/internal/dashboard"
	"course-dashboard/internal/domain"
)

func strp(s string) *string { return &s }

func sampleRows() []dashboard.CourseSummary {
	price := 149.9
	seats := 12
	status := domain.StatusActive
	return []dashboard.CourseSummary{
		{
			Course: domain.Course{ID: "c1", Fields: domain.CourseFields{
				Title:           strp("Go\nGrundlagen"),
				StartDate:       strp("2025-04-01"),
				EndDate:         strp("2025-04-03"),
				MaxParticipants: &seats,
				Price:           &price,
				Status:          &status,
			}},
			Instructor:    "Anna Schmidt",
			Room:          "A101, EG",
			Registrations: 3,
			Paid:          2,
			Revenue:       299.8,
		},
		{
			Course:     domain.Course{ID: "c2"},
			Instructor: dashboard.UnknownName,
			Room:       dashboard.UnknownName,
		},
	}
}

func TestWriteCourseCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCourseCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteCourseCSV() error = %v", err)
	}

	if !strings.Contains(buf.String(), "\r\n") {
		t.Error("Expected CRLF line endings")
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read back CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	if strings.Join(records[0], ",") != strings.Join(courseHeader, ",") {
		t.Errorf("Header mismatch: %v", records[0])
	}

	want := []string{"c1", "Go Grundlagen", "aktiv", "2025-04-01", "2025-04-03", "Anna Schmidt", "A101, EG", "12", "149.90", "3", "2", "1", "299.80"}
	for i, v := range want {
		if records[1][i] != v {
			t.Errorf("row 1 column %s = %q, want %q", courseHeader[i], records[1][i], v)
		}
	}

	empty := []string{"c2", "", "geplant", "", "", "—", "—", "", "", "0", "0", "0", "0.00"}
	for i, v := range empty {
		if records[2][i] != v {
			t.Errorf("row 2 column %s = %q, want %q", courseHeader[i], records[2][i], v)
		}
	}
}

func TestWriteCourseCSVFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "nested", "courses.csv")

	if err := WriteCourseCSVFile(outPath, sampleRows()); err != nil {
		t.Fatalf("WriteCourseCSVFile() error = %v", err)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.HasPrefix(string(content), "COURSE_ID,COURSE_TITLE,") {
		t.Errorf("Unexpected file start: %q", string(content[:20]))
	}
}

func TestWriteCourseCSVOnlyHeaderWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCourseCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCourseCSV() error = %v", err)
	}
	if got := strings.Count(buf.String(), "\r\n"); got != 1 {
		t.Errorf("Expected a single header line, got %d lines", got)
	}
}
