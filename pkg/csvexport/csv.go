// Package csvexport renders the full attendance report in the CSV layout
// the sharing flow expects.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/yourusername/rollcall/internal/models"
	"github.com/yourusername/rollcall/pkg/utils"
)

var header = []string{"Date", "Subject", "Status", "Type"}

// Render writes the report rows as CSV. Subject names containing commas
// or quotes are escaped by the writer.
func Render(rows []*models.AttendanceReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}

	for _, row := range rows {
		if err := w.Write([]string{row.Date, row.Subject, row.Status, row.Type}); err != nil {
			return nil, fmt.Errorf("write CSV row (date: %s, subject: %s): %w", row.Date, row.Subject, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// FileName returns the date-stamped export file name.
func FileName(now time.Time) string {
	return fmt.Sprintf("RollCall_Report_%s.csv", utils.DayString(now))
}
