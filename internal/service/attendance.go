package service

import (
	"context"
	"fmt"
	"math"

	"github.com/yourusername/rollcall/internal/models"
	"github.com/yourusername/rollcall/internal/service/schedule"
	"github.com/yourusername/rollcall/pkg/utils"
)

// ResolveDay produces the ordered class list for a date: the weekday's
// timetable entries merged with that date's extra classes. Dates in the
// future or before the profile's creation day resolve to an empty list —
// nothing is markable there. An empty result is never an error.
func (s *Service) ResolveDay(ctx context.Context, date string) ([]models.ClassInstance, error) {
	dayIndex, err := utils.WeekdayIndex(date)
	if err != nil {
		return nil, models.Invalid(fmt.Sprintf("invalid date: %s", date))
	}

	if date > utils.Today() {
		return nil, nil
	}

	user, err := s.repo.GetUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	if !user.CreatedAt.IsZero() && date < utils.DayString(user.CreatedAt) {
		return nil, nil
	}

	entries, err := s.repo.GetScheduleForDay(ctx, dayIndex)
	if err != nil {
		return nil, fmt.Errorf("get schedule (date: %s, day_index: %d): %w", date, dayIndex, err)
	}

	extras, err := s.repo.GetExtraClassesForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get extra classes (date: %s): %w", date, err)
	}

	return schedule.BuildDaySchedule(entries, extras), nil
}

// MarkAttendance records a status for one class instance on one date.
// Marking the same instance+date again updates the existing record in
// place, so the operation is idempotent. After the write the subject's
// derived counters are recounted from the attendance log and persisted;
// the whole sequence runs in a single transaction. Callers must refresh
// any derived reads afterwards — nothing is pushed.
func (s *Service) MarkAttendance(ctx context.Context, subjectID int64, date string, status models.AttendanceStatus, ref models.ClassInstanceRef) error {
	if !status.Valid() {
		return models.Invalid(fmt.Sprintf("unknown attendance status: %s", status))
	}
	if !ref.Valid() {
		return models.Invalid("instance reference must carry exactly one of timetable id or extra class id")
	}
	if _, err := utils.ParseDay(date); err != nil {
		return models.Invalid(fmt.Sprintf("invalid date: %s", date))
	}

	if date > utils.Today() {
		return models.Invalid("cannot mark attendance for a future date")
	}

	user, err := s.repo.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return models.Invalid("no user profile")
	}
	if !user.CreatedAt.IsZero() && date < utils.DayString(user.CreatedAt) {
		return models.Invalid("cannot mark attendance before the profile was created")
	}

	return s.repo.RunInTx(ctx, func(txRepo models.Repository) error {
		existing, err := txRepo.GetAttendanceByInstance(ctx, subjectID, date, ref)
		if err != nil {
			return err
		}

		if existing != nil {
			if err := txRepo.UpdateAttendanceStatus(ctx, existing.ID, status); err != nil {
				return err
			}
		} else {
			record := &models.AttendanceRecord{
				SubjectID: subjectID,
				Date:      date,
				Status:    status,
			}
			switch ref.Kind {
			case models.InstanceRegular:
				record.TimetableID = &ref.ID
			case models.InstanceExtra:
				record.ExtraClassID = &ref.ID
			}
			if err := txRepo.CreateAttendance(ctx, record); err != nil {
				return err
			}
		}

		total, attended, err := txRepo.CountAttendance(ctx, subjectID)
		if err != nil {
			return err
		}

		return txRepo.UpdateSubjectCounters(ctx, subjectID, total, attended)
	})
}

func (s *Service) GetAttendanceByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error) {
	return s.repo.GetAttendanceForDate(ctx, date)
}

// ComputePercentage derives the display percentage from a subject's
// counters: 0 when no classes counted, otherwise attended/total rounded
// half-up.
func ComputePercentage(subject *models.Subject) int {
	if subject.TotalClasses == 0 {
		return 0
	}
	return int(math.Round(float64(subject.AttendedClasses) / float64(subject.TotalClasses) * 100))
}
