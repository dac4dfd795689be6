package models

import (
	"context"
	"time"
)

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context) (*User, error)
	UserExists(ctx context.Context) (bool, error)
	UpdateThemePreference(ctx context.Context, theme ThemePreference) error
	UpdateNotificationSetting(ctx context.Context, kind NotificationKind, enabled bool) error
	RunInTx(ctx context.Context, fn func(Repository) error) error

	CreateSubject(ctx context.Context, subject *Subject) error
	GetSubjects(ctx context.Context) ([]*Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*Subject, error)
	UpdateSubject(ctx context.Context, subject *Subject) error
	UpdateSubjectCounters(ctx context.Context, id int64, total, attended int) error
	DeleteSubject(ctx context.Context, id int64) error

	CreateScheduleItem(ctx context.Context, entry *TimetableEntry) error
	GetScheduleForDay(ctx context.Context, dayIndex int) ([]*TimetableEntry, error)
	DeleteScheduleItem(ctx context.Context, id int64) error
	DeleteScheduleForSubject(ctx context.Context, subjectID int64) error

	CreateExtraClass(ctx context.Context, extra *ExtraClass) error
	GetExtraClassesForDate(ctx context.Context, date string) ([]*ExtraClass, error)
	DeleteExtraClassesForSubject(ctx context.Context, subjectID int64) error

	GetAttendanceByInstance(ctx context.Context, subjectID int64, date string, ref ClassInstanceRef) (*AttendanceRecord, error)
	CreateAttendance(ctx context.Context, record *AttendanceRecord) error
	UpdateAttendanceStatus(ctx context.Context, id int64, status AttendanceStatus) error
	GetAttendanceForDate(ctx context.Context, date string) ([]*AttendanceRecord, error)
	CountAttendance(ctx context.Context, subjectID int64) (total, attended int, err error)
	DeleteAttendanceForSubject(ctx context.Context, subjectID int64) error

	CreateTask(ctx context.Context, task *Task) error
	GetTasks(ctx context.Context) ([]*Task, error)
	ToggleTaskStatus(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error
	DetachTasksFromSubject(ctx context.Context, subjectID int64) error

	CreateNotification(ctx context.Context, entry *NotificationLogEntry) error
	GetNotificationsTriggeredBy(ctx context.Context, cutoff time.Time) ([]*NotificationLogEntry, error)
	ClearNotifications(ctx context.Context) error

	GetCalendarMarkers(ctx context.Context) (map[string][]CalendarMarker, error)
	GetFullAttendanceReport(ctx context.Context) ([]*AttendanceReportRow, error)
	ClearSemesterData(ctx context.Context) error
}

type Service interface {
	CheckUserExists(ctx context.Context) (bool, error)
	CreateUser(ctx context.Context, name string, minAttendance int) error
	GetUser(ctx context.Context) (*User, error)
	UpdateThemePreference(ctx context.Context, theme ThemePreference) error
	NotificationSettings(ctx context.Context) (notifyClasses, notifyTasks bool, err error)
	UpdateNotificationSettings(ctx context.Context, kind NotificationKind, enabled bool) error
	ShouldNotify(ctx context.Context, kind NotificationKind) (bool, error)

	AddSubject(ctx context.Context, name, teacher, color string, totalClasses, attendedClasses int) (*Subject, error)
	GetSubjects(ctx context.Context) ([]*Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*Subject, error)
	UpdateSubject(ctx context.Context, subject *Subject) error
	DeleteSubject(ctx context.Context, id int64) error

	AddScheduleItem(ctx context.Context, subjectID int64, dayIndex int, startTime, endTime, location string) (*TimetableEntry, error)
	GetScheduleForDay(ctx context.Context, dayIndex int) ([]*TimetableEntry, error)
	DeleteScheduleItem(ctx context.Context, id int64) error
	AddExtraClass(ctx context.Context, subjectID int64, date, startTime, endTime, location string) (*ExtraClass, error)
	GetExtraClassesForDate(ctx context.Context, date string) ([]*ExtraClass, error)

	ResolveDay(ctx context.Context, date string) ([]ClassInstance, error)
	MarkAttendance(ctx context.Context, subjectID int64, date string, status AttendanceStatus, ref ClassInstanceRef) error
	GetAttendanceByDate(ctx context.Context, date string) ([]*AttendanceRecord, error)

	AddTask(ctx context.Context, title, description string, subjectID *int64, dueDate time.Time) (*Task, error)
	GetTasks(ctx context.Context) ([]*Task, error)
	ToggleTaskStatus(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error

	LogNotification(ctx context.Context, title, body, notifType string, triggerAt time.Time) error
	GetInboxNotifications(ctx context.Context) ([]*NotificationLogEntry, error)
	ClearNotifications(ctx context.Context) error

	GetCalendarMarkers(ctx context.Context) (map[string][]CalendarMarker, error)
	GetFullAttendanceReport(ctx context.Context) ([]*AttendanceReportRow, error)
	ResetSemesterData(ctx context.Context) error
}
