package models

import (
	"fmt"
	"time"
)

type AttendanceStatus string

const (
	StatusPresent   AttendanceStatus = "present"
	StatusAbsent    AttendanceStatus = "absent"
	StatusCancelled AttendanceStatus = "cancelled"
	StatusHoliday   AttendanceStatus = "holiday"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusCancelled, StatusHoliday:
		return true
	}
	return false
}

// CountsTowardTotal reports whether a status contributes to a subject's
// total_classes counter. Cancelled and holiday marks mean the class
// effectively never happened.
func (s AttendanceStatus) CountsTowardTotal() bool {
	return s == StatusPresent || s == StatusAbsent
}

type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

func (p ThemePreference) Valid() bool {
	return p == ThemeLight || p == ThemeDark || p == ThemeSystem
}

type NotificationKind string

const (
	NotifyClasses NotificationKind = "classes"
	NotifyTasks   NotificationKind = "tasks"
)

// User is the singleton profile row. CreatedAt is immutable once set and
// defines the earliest date attendance may be recorded for.
type User struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	MinAttendance int       `db:"min_attendance"`
	ThemePref     string    `db:"theme_pref"`
	CreatedAt     time.Time `db:"created_at"`
	NotifyClasses bool      `db:"notify_classes"`
	NotifyTasks   bool      `db:"notify_tasks"`
}

// Subject carries two derived counters. They are recomputed from the
// attendance table after every mark, never incremented in place.
type Subject struct {
	ID              int64   `db:"id"`
	Name            string  `db:"name"`
	Teacher         *string `db:"teacher"`
	Color           string  `db:"color"`
	TotalClasses    int     `db:"total_classes"`
	AttendedClasses int     `db:"attended_classes"`
}

// TimetableEntry is a recurring weekly slot, not a dated occurrence.
// DayIndex runs 0=Sunday..6=Saturday.
type TimetableEntry struct {
	ID        int64   `db:"id"`
	SubjectID int64   `db:"subject_id"`
	DayIndex  int     `db:"day_index"`
	StartTime string  `db:"start_time"`
	EndTime   string  `db:"end_time"`
	Location  *string `db:"location"`
}

// ExtraClass is a one-off occurrence on an exact date (YYYY-MM-DD).
type ExtraClass struct {
	ID        int64   `db:"id"`
	SubjectID int64   `db:"subject_id"`
	Date      string  `db:"date"`
	StartTime string  `db:"start_time"`
	EndTime   string  `db:"end_time"`
	Location  *string `db:"location"`
}

type AttendanceRecord struct {
	ID           int64            `db:"id"`
	SubjectID    int64            `db:"subject_id"`
	Date         string           `db:"date"`
	Status       AttendanceStatus `db:"status"`
	TimetableID  *int64           `db:"timetable_id"`
	ExtraClassID *int64           `db:"extra_class_id"`
}

// InstanceRef returns the tagged instance identity of the record, derived
// from its nullable key columns.
func (r *AttendanceRecord) InstanceRef() ClassInstanceRef {
	switch {
	case r.TimetableID != nil:
		return RegularInstance(*r.TimetableID)
	case r.ExtraClassID != nil:
		return ExtraInstance(*r.ExtraClassID)
	}
	return LegacyInstance()
}

type Task struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	SubjectID   *int64    `db:"subject_id"`
	DueDate     time.Time `db:"due_date"`
	IsCompleted bool      `db:"is_completed"`
}

type NotificationLogEntry struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Type      string    `db:"type"`
	TriggerAt time.Time `db:"trigger_at"`
	IsRead    bool      `db:"is_read"`
}

type InstanceKind string

const (
	InstanceRegular InstanceKind = "regular"
	InstanceExtra   InstanceKind = "extra"
	InstanceLegacy  InstanceKind = "legacy"
)

// ClassInstanceRef identifies the class instance an attendance mark targets.
// It is the explicit form of the attendance table's two nullable foreign
// keys: Regular carries a timetable id, Extra an extra-class id, and Legacy
// carries neither (records keyed by subject+date only, predating instance
// tracking).
type ClassInstanceRef struct {
	Kind InstanceKind
	ID   int64
}

func RegularInstance(timetableID int64) ClassInstanceRef {
	return ClassInstanceRef{Kind: InstanceRegular, ID: timetableID}
}

func ExtraInstance(extraClassID int64) ClassInstanceRef {
	return ClassInstanceRef{Kind: InstanceExtra, ID: extraClassID}
}

func LegacyInstance() ClassInstanceRef {
	return ClassInstanceRef{Kind: InstanceLegacy}
}

func (r ClassInstanceRef) Valid() bool {
	switch r.Kind {
	case InstanceRegular, InstanceExtra:
		return r.ID > 0
	case InstanceLegacy:
		return r.ID == 0
	}
	return false
}

// ClassInstance is a single dated occurrence of a class, produced by the
// day resolver from either a timetable slot or an extra class.
type ClassInstance struct {
	Kind       InstanceKind
	InstanceID int64
	SubjectID  int64
	StartTime  string
	EndTime    string
	Location   *string
}

// Key returns the lookup key used to match a day's attendance records to
// their instances, e.g. "timetable_3" or "extra_7".
func (c ClassInstance) Key() string {
	if c.Kind == InstanceExtra {
		return fmt.Sprintf("extra_%d", c.InstanceID)
	}
	return fmt.Sprintf("timetable_%d", c.InstanceID)
}

// Ref converts a resolved instance into the reference a mark should carry.
func (c ClassInstance) Ref() ClassInstanceRef {
	if c.Kind == InstanceExtra {
		return ExtraInstance(c.InstanceID)
	}
	return RegularInstance(c.InstanceID)
}

// CalendarMarker is one calendar dot: a subject that has at least one
// attendance record on a given date.
type CalendarMarker struct {
	SubjectID int64  `db:"subject_id"`
	Color     string `db:"color"`
}

// AttendanceReportRow is one line of the CSV-ready report.
type AttendanceReportRow struct {
	Date    string `db:"date"`
	Subject string `db:"subject"`
	Status  string `db:"status"`
	Type    string `db:"type"`
}
