// Package schedule merges the recurring weekly timetable with ad-hoc extra
// classes into one ordered per-date class list.
package schedule

import (
	"sort"

	"github.com/yourusername/rollcall/internal/models"
)

// BuildDaySchedule merges a day's timetable entries with its extra classes
// and orders the result ascending by start time. Comparison is plain string
// comparison on the stored "HH:MM" values, which matches chronological
// order for zero-padded 24-hour times. The sort is stable and regular
// entries are appended before extras, so on an exact start-time tie a
// regular class comes first.
func BuildDaySchedule(entries []*models.TimetableEntry, extras []*models.ExtraClass) []models.ClassInstance {
	instances := make([]models.ClassInstance, 0, len(entries)+len(extras))

	for _, entry := range entries {
		instances = append(instances, models.ClassInstance{
			Kind:       models.InstanceRegular,
			InstanceID: entry.ID,
			SubjectID:  entry.SubjectID,
			StartTime:  entry.StartTime,
			EndTime:    entry.EndTime,
			Location:   entry.Location,
		})
	}

	for _, extra := range extras {
		instances = append(instances, models.ClassInstance{
			Kind:       models.InstanceExtra,
			InstanceID: extra.ID,
			SubjectID:  extra.SubjectID,
			StartTime:  extra.StartTime,
			EndTime:    extra.EndTime,
			Location:   extra.Location,
		})
	}

	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].StartTime < instances[j].StartTime
	})

	return instances
}
