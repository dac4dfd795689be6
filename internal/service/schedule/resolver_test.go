package schedule

import (
	"testing"

	"github.com/yourusername/rollcall/internal/models"
)

func entry(id, subjectID int64, start string) *models.TimetableEntry {
	return &models.TimetableEntry{ID: id, SubjectID: subjectID, DayIndex: 1, StartTime: start, EndTime: "23:59"}
}

func extra(id, subjectID int64, start string) *models.ExtraClass {
	return &models.ExtraClass{ID: id, SubjectID: subjectID, Date: "2024-01-01", StartTime: start, EndTime: "23:59"}
}

func TestBuildDayScheduleOrdersByStartTime(t *testing.T) {
	instances := BuildDaySchedule(
		[]*models.TimetableEntry{entry(1, 10, "10:00")},
		[]*models.ExtraClass{extra(2, 20, "09:00")},
	)

	if len(instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(instances))
	}
	if instances[0].Kind != models.InstanceExtra || instances[0].InstanceID != 2 {
		t.Errorf("expected 09:00 extra class first, got %s/%d", instances[0].Kind, instances[0].InstanceID)
	}
	if instances[1].Kind != models.InstanceRegular || instances[1].InstanceID != 1 {
		t.Errorf("expected 10:00 regular class second, got %s/%d", instances[1].Kind, instances[1].InstanceID)
	}
}

func TestBuildDayScheduleRegularBeforeExtraOnTie(t *testing.T) {
	instances := BuildDaySchedule(
		[]*models.TimetableEntry{entry(1, 10, "10:00")},
		[]*models.ExtraClass{extra(2, 20, "10:00")},
	)

	if len(instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(instances))
	}
	if instances[0].Kind != models.InstanceRegular {
		t.Errorf("expected regular class first on exact tie, got %s", instances[0].Kind)
	}
	if instances[1].Kind != models.InstanceExtra {
		t.Errorf("expected extra class second on exact tie, got %s", instances[1].Kind)
	}
}

func TestBuildDayScheduleStableWithinKind(t *testing.T) {
	instances := BuildDaySchedule(
		[]*models.TimetableEntry{entry(5, 10, "10:00"), entry(6, 11, "10:00")},
		nil,
	)

	if instances[0].InstanceID != 5 || instances[1].InstanceID != 6 {
		t.Errorf("expected fetch order preserved on tie, got %d then %d", instances[0].InstanceID, instances[1].InstanceID)
	}
}

func TestBuildDayScheduleEmpty(t *testing.T) {
	if got := BuildDaySchedule(nil, nil); len(got) != 0 {
		t.Errorf("expected empty schedule, got %d instances", len(got))
	}
}

func TestClassInstanceKeys(t *testing.T) {
	instances := BuildDaySchedule(
		[]*models.TimetableEntry{entry(3, 10, "08:00")},
		[]*models.ExtraClass{extra(7, 10, "09:00")},
	)

	if key := instances[0].Key(); key != "timetable_3" {
		t.Errorf("regular key = %q, want %q", key, "timetable_3")
	}
	if key := instances[1].Key(); key != "extra_7" {
		t.Errorf("extra key = %q, want %q", key, "extra_7")
	}

	if ref := instances[1].Ref(); ref.Kind != models.InstanceExtra || ref.ID != 7 {
		t.Errorf("extra ref = %+v", ref)
	}
}
