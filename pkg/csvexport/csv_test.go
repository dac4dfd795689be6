package csvexport

import (
	"strings"
	"testing"
	"time"

	"github.com/yourusername/rollcall/internal/models"
)

func TestRenderEscapesCommas(t *testing.T) {
	rows := []*models.AttendanceReportRow{
		{Date: "2024-01-08", Subject: "Math, Advanced", Status: "present", Type: "Regular"},
		{Date: "2024-01-01", Subject: "Physics", Status: "absent", Type: "Extra Class"},
	}

	out, err := Render(rows)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Subject,Status,Type" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `2024-01-08,"Math, Advanced",present,Regular` {
		t.Errorf("comma-bearing subject not quoted: %q", lines[1])
	}
	if lines[2] != "2024-01-01,Physics,absent,Extra Class" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	if got := FileName(now); got != "RollCall_Report_2024-06-01.csv" {
		t.Errorf("FileName = %q", got)
	}
}
