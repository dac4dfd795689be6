package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/rollcall/internal/models"
	"github.com/yourusername/rollcall/pkg/utils"
)

// timeOfDayPattern validates stored class times: zero-padded 24-hour
// "HH:MM", so lexicographic order equals chronological order.
var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Service struct {
	repo models.Repository
}

func NewService(repo models.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CheckUserExists(ctx context.Context) (bool, error) {
	return s.repo.UserExists(ctx)
}

func (s *Service) CreateUser(ctx context.Context, name string, minAttendance int) error {
	if strings.TrimSpace(name) == "" {
		return models.Invalid("name is required")
	}
	if minAttendance < 0 || minAttendance > 100 {
		return models.Invalid("minimum attendance must be between 0 and 100")
	}

	exists, err := s.repo.UserExists(ctx)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return models.Invalid("profile already exists")
	}

	user := &models.User{
		Name:          strings.TrimSpace(name),
		MinAttendance: minAttendance,
		ThemePref:     string(models.ThemeSystem),
		CreatedAt:     time.Now().UTC(),
		NotifyClasses: true,
		NotifyTasks:   true,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create user (name: %s): %w", name, err)
	}

	return nil
}

func (s *Service) GetUser(ctx context.Context) (*models.User, error) {
	return s.repo.GetUser(ctx)
}

func (s *Service) UpdateThemePreference(ctx context.Context, theme models.ThemePreference) error {
	if !theme.Valid() {
		return models.Invalid(fmt.Sprintf("unknown theme preference: %s", theme))
	}
	return s.repo.UpdateThemePreference(ctx, theme)
}

func (s *Service) NotificationSettings(ctx context.Context) (notifyClasses, notifyTasks bool, err error) {
	user, err := s.repo.GetUser(ctx)
	if err != nil {
		return false, false, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		// No profile yet; both kinds default to enabled.
		return true, true, nil
	}
	return user.NotifyClasses, user.NotifyTasks, nil
}

func (s *Service) UpdateNotificationSettings(ctx context.Context, kind models.NotificationKind, enabled bool) error {
	if kind != models.NotifyClasses && kind != models.NotifyTasks {
		return models.Invalid(fmt.Sprintf("unknown notification kind: %s", kind))
	}
	return s.repo.UpdateNotificationSetting(ctx, kind, enabled)
}

// ShouldNotify is the gate the reminder scheduler checks before scheduling
// a class or task notification.
func (s *Service) ShouldNotify(ctx context.Context, kind models.NotificationKind) (bool, error) {
	notifyClasses, notifyTasks, err := s.NotificationSettings(ctx)
	if err != nil {
		return false, err
	}
	if kind == models.NotifyTasks {
		return notifyTasks, nil
	}
	return notifyClasses, nil
}

func (s *Service) AddSubject(ctx context.Context, name, teacher, color string, totalClasses, attendedClasses int) (*models.Subject, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.Invalid("subject name is required")
	}
	if color == "" {
		return nil, models.Invalid("subject color is required")
	}
	if totalClasses < 0 || attendedClasses < 0 {
		return nil, models.Invalid("class counts cannot be negative")
	}
	if attendedClasses > totalClasses {
		return nil, models.Invalid("attended classes cannot exceed total classes")
	}

	subject := &models.Subject{
		Name:            strings.TrimSpace(name),
		Teacher:         optional(teacher),
		Color:           color,
		TotalClasses:    totalClasses,
		AttendedClasses: attendedClasses,
	}

	if err := s.repo.CreateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("add subject (name: %s): %w", name, err)
	}

	return subject, nil
}

func (s *Service) GetSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.repo.GetSubjects(ctx)
}

func (s *Service) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.repo.GetSubjectByID(ctx, id)
}

func (s *Service) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	if strings.TrimSpace(subject.Name) == "" {
		return models.Invalid("subject name is required")
	}
	return s.repo.UpdateSubject(ctx, subject)
}

// DeleteSubject removes the subject together with its timetable, extra
// classes and attendance; tasks only lose their subject link. One
// transaction so a crash cannot leave orphans referencing a gone subject.
func (s *Service) DeleteSubject(ctx context.Context, id int64) error {
	return s.repo.RunInTx(ctx, func(txRepo models.Repository) error {
		if err := txRepo.DeleteAttendanceForSubject(ctx, id); err != nil {
			return err
		}
		if err := txRepo.DeleteScheduleForSubject(ctx, id); err != nil {
			return err
		}
		if err := txRepo.DeleteExtraClassesForSubject(ctx, id); err != nil {
			return err
		}
		if err := txRepo.DetachTasksFromSubject(ctx, id); err != nil {
			return err
		}
		return txRepo.DeleteSubject(ctx, id)
	})
}

func (s *Service) AddScheduleItem(ctx context.Context, subjectID int64, dayIndex int, startTime, endTime, location string) (*models.TimetableEntry, error) {
	if subjectID <= 0 {
		return nil, models.Invalid("subject is required")
	}
	if dayIndex < 0 || dayIndex > 6 {
		return nil, models.Invalid("day index must be between 0 (Sunday) and 6 (Saturday)")
	}
	if !timeOfDayPattern.MatchString(startTime) || !timeOfDayPattern.MatchString(endTime) {
		return nil, models.Invalid("times must be in 24-hour HH:MM format")
	}

	entry := &models.TimetableEntry{
		SubjectID: subjectID,
		DayIndex:  dayIndex,
		StartTime: startTime,
		EndTime:   endTime,
		Location:  optional(location),
	}

	if err := s.repo.CreateScheduleItem(ctx, entry); err != nil {
		return nil, fmt.Errorf("add schedule item (subject_id: %d, day_index: %d): %w", subjectID, dayIndex, err)
	}

	return entry, nil
}

func (s *Service) GetScheduleForDay(ctx context.Context, dayIndex int) ([]*models.TimetableEntry, error) {
	if dayIndex < 0 || dayIndex > 6 {
		return nil, models.Invalid("day index must be between 0 (Sunday) and 6 (Saturday)")
	}
	return s.repo.GetScheduleForDay(ctx, dayIndex)
}

func (s *Service) DeleteScheduleItem(ctx context.Context, id int64) error {
	return s.repo.DeleteScheduleItem(ctx, id)
}

func (s *Service) AddExtraClass(ctx context.Context, subjectID int64, date, startTime, endTime, location string) (*models.ExtraClass, error) {
	if subjectID <= 0 {
		return nil, models.Invalid("subject is required")
	}
	if _, err := utils.ParseDay(date); err != nil {
		return nil, models.Invalid(fmt.Sprintf("invalid date: %s", date))
	}
	if !timeOfDayPattern.MatchString(startTime) || !timeOfDayPattern.MatchString(endTime) {
		return nil, models.Invalid("times must be in 24-hour HH:MM format")
	}

	extra := &models.ExtraClass{
		SubjectID: subjectID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Location:  optional(location),
	}

	if err := s.repo.CreateExtraClass(ctx, extra); err != nil {
		return nil, fmt.Errorf("add extra class (subject_id: %d, date: %s): %w", subjectID, date, err)
	}

	return extra, nil
}

func (s *Service) GetExtraClassesForDate(ctx context.Context, date string) ([]*models.ExtraClass, error) {
	return s.repo.GetExtraClassesForDate(ctx, date)
}

func (s *Service) AddTask(ctx context.Context, title, description string, subjectID *int64, dueDate time.Time) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, models.Invalid("task title is required")
	}

	task := &models.Task{
		Title:       strings.TrimSpace(title),
		Description: optional(description),
		SubjectID:   subjectID,
		DueDate:     dueDate,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("add task (title: %s): %w", title, err)
	}

	return task, nil
}

func (s *Service) GetTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repo.GetTasks(ctx)
}

func (s *Service) ToggleTaskStatus(ctx context.Context, id int64) error {
	return s.repo.ToggleTaskStatus(ctx, id)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	return s.repo.DeleteTask(ctx, id)
}

func (s *Service) LogNotification(ctx context.Context, title, body, notifType string, triggerAt time.Time) error {
	if strings.TrimSpace(title) == "" {
		return models.Invalid("notification title is required")
	}

	entry := &models.NotificationLogEntry{
		Title:     title,
		Body:      body,
		Type:      notifType,
		TriggerAt: triggerAt,
	}

	if err := s.repo.CreateNotification(ctx, entry); err != nil {
		return fmt.Errorf("log notification (title: %s): %w", title, err)
	}

	return nil
}

func (s *Service) GetInboxNotifications(ctx context.Context) ([]*models.NotificationLogEntry, error) {
	return s.repo.GetNotificationsTriggeredBy(ctx, time.Now())
}

func (s *Service) ClearNotifications(ctx context.Context) error {
	return s.repo.ClearNotifications(ctx)
}

func (s *Service) GetCalendarMarkers(ctx context.Context) (map[string][]models.CalendarMarker, error) {
	return s.repo.GetCalendarMarkers(ctx)
}

func (s *Service) GetFullAttendanceReport(ctx context.Context) ([]*models.AttendanceReportRow, error) {
	return s.repo.GetFullAttendanceReport(ctx)
}

// ResetSemesterData wipes everything except the user profile. Destructive
// and non-recoverable; runs as one transaction so either all tables clear
// or none do.
func (s *Service) ResetSemesterData(ctx context.Context) error {
	err := s.repo.RunInTx(ctx, func(txRepo models.Repository) error {
		return txRepo.ClearSemesterData(ctx)
	})
	if err != nil {
		return fmt.Errorf("reset semester data: %w", err)
	}

	zap.S().Info("semester data reset")
	return nil
}

// optional maps an empty form value to NULL at the persistence boundary.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
