package schedule

import (
	"context"
	"testing"

	"github.com/coregymclub/core-gym-public/internal/zoezi"
)

type fakeSource struct {
	workouts []zoezi.Workout
	err      error
}

func (f *fakeSource) GetWorkouts(ctx context.Context, fromDate, toDate string) ([]zoezi.Workout, error) {
	return f.workouts, f.err
}

func (f *fakeSource) FileDownloadURL(key string) string {
	return "https://coregymclub.zoezi.se/api/utils/file/download?key=" + key
}

func fetch(t *testing.T, workouts []zoezi.Workout) []DaySchedule {
	t.Helper()
	agg := NewAggregator(&fakeSource{workouts: workouts})
	days, err := agg.Fetch(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return days
}

func TestFetchExcludesInternalCategories(t *testing.T) {
	days := fetch(t, []zoezi.Workout{
		{ID: 1, WorkoutType: zoezi.WorkoutType{Name: "Virtual RPM", CategoryID: 5}, StartTime: "2026-09-01T06:00:00"},
		{ID: 2, WorkoutType: zoezi.WorkoutType{Name: "Bemannade tider", CategoryID: 10}, StartTime: "2026-09-01T08:00:00"},
		{ID: 3, WorkoutType: zoezi.WorkoutType{Name: "BodyPump", CategoryID: 2}, StartTime: "2026-09-01T17:30:00", EndTime: "2026-09-01T18:25:00"},
	})

	if len(days) != 1 || len(days[0].Classes) != 1 {
		t.Fatalf("expected exactly one surviving class, got %+v", days)
	}
	if days[0].Classes[0].ID != 3 {
		t.Fatalf("wrong class survived: %+v", days[0].Classes[0])
	}
}

func TestFetchDropsUnparseableStartTimes(t *testing.T) {
	days := fetch(t, []zoezi.Workout{
		{ID: 1, WorkoutType: zoezi.WorkoutType{Name: "Yoga"}, StartTime: "not-a-date"},
		{ID: 2, WorkoutType: zoezi.WorkoutType{Name: "Yoga"}, StartTime: ""},
		{ID: 3, WorkoutType: zoezi.WorkoutType{Name: "Yoga"}, StartTime: "2026-09-02T09:00:00"},
	})

	if len(days) != 1 || len(days[0].Classes) != 1 || days[0].Classes[0].ID != 3 {
		t.Fatalf("expected only the parseable workout to survive: %+v", days)
	}
}

func TestFetchSpotsLeftMayGoNegative(t *testing.T) {
	days := fetch(t, []zoezi.Workout{
		{ID: 1, WorkoutType: zoezi.WorkoutType{Name: "BodyCombat"}, StartTime: "2026-09-01T18:00:00", Space: 20, NumBooked: 23},
	})

	if got := days[0].Classes[0].SpotsLeft; got != -3 {
		t.Fatalf("overbooked class should report -3 spots left, got %d", got)
	}
}

func TestFetchSortsWithinAndAcrossDays(t *testing.T) {
	days := fetch(t, []zoezi.Workout{
		{ID: 1, WorkoutType: zoezi.WorkoutType{Name: "A"}, StartTime: "2026-09-02T10:00:00"},
		{ID: 2, WorkoutType: zoezi.WorkoutType{Name: "B"}, StartTime: "2026-09-01T18:00:00"},
		{ID: 3, WorkoutType: zoezi.WorkoutType{Name: "C"}, StartTime: "2026-09-01T06:15:00"},
		{ID: 4, WorkoutType: zoezi.WorkoutType{Name: "D"}, StartTime: "2026-09-01T09:30:00"},
	})

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2026-09-01" || days[1].Date != "2026-09-02" {
		t.Fatalf("days not sorted by date: %s, %s", days[0].Date, days[1].Date)
	}
	times := []string{}
	for _, class := range days[0].Classes {
		times = append(times, class.Time)
	}
	if times[0] != "06:15" || times[1] != "09:30" || times[2] != "18:00" {
		t.Fatalf("classes not sorted by start time: %v", times)
	}
}

func TestFetchKeepsDuplicateIDs(t *testing.T) {
	// Multi-resource bookings can repeat the same workout id; they are
	// passed through verbatim.
	days := fetch(t, []zoezi.Workout{
		{ID: 7, WorkoutType: zoezi.WorkoutType{Name: "Yoga"}, StartTime: "2026-09-01T09:00:00"},
		{ID: 7, WorkoutType: zoezi.WorkoutType{Name: "Yoga"}, StartTime: "2026-09-01T09:00:00"},
	})

	if len(days[0].Classes) != 2 {
		t.Fatalf("duplicates must not be collapsed: %+v", days[0].Classes)
	}
}

func TestFetchSwedishDayNames(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	days := fetch(t, []zoezi.Workout{
		{ID: 1, WorkoutType: zoezi.WorkoutType{Name: "Yoga"}, StartTime: "2026-09-01T09:00:00"},
	})
	if days[0].DayName != "Tisdag" {
		t.Fatalf("expected Tisdag, got %s", days[0].DayName)
	}
}

func TestFetchResolvesRoomAndInstructor(t *testing.T) {
	days := fetch(t, []zoezi.Workout{
		{
			ID:          1,
			WorkoutType: zoezi.WorkoutType{Name: "BodyBalance"},
			StartTime:   "2026-09-01T09:00:00",
			Resources: []zoezi.Resource{
				{ID: 1, Lastname: "Cykelsalen", ResourceType: "bike"},
				{ID: 2, Lastname: "Stora salen", ResourceType: "room"},
			},
			Staffs: []zoezi.Staff{
				{ID: 9, Firstname: "Denise", Lastname: "Kimström", ImageKey: "img-1"},
			},
		},
	})

	class := days[0].Classes[0]
	if class.Room != "Stora salen" {
		t.Fatalf("expected room resource to win, got %q", class.Room)
	}
	if class.Instructor == nil || *class.Instructor != "Denise Kimström" {
		t.Fatalf("unexpected instructor: %v", class.Instructor)
	}
	if class.InstructorImage == nil || *class.InstructorImage != "https://coregymclub.zoezi.se/api/utils/file/download?key=img-1" {
		t.Fatalf("unexpected instructor image: %v", class.InstructorImage)
	}
}

func TestFetchInstructorSinglePartName(t *testing.T) {
	days := fetch(t, []zoezi.Workout{
		{
			ID:          1,
			WorkoutType: zoezi.WorkoutType{Name: "Yoga"},
			StartTime:   "2026-09-01T09:00:00",
			Staffs:      []zoezi.Staff{{ID: 9, Lastname: "Kimström"}},
		},
		{
			ID:          2,
			WorkoutType: zoezi.WorkoutType{Name: "Yoga"},
			StartTime:   "2026-09-01T10:00:00",
		},
	})

	classes := days[0].Classes
	if classes[0].Instructor == nil || *classes[0].Instructor != "Kimström" {
		t.Fatalf("single part name should be used as-is: %v", classes[0].Instructor)
	}
	if classes[1].Instructor != nil || classes[1].InstructorImage != nil {
		t.Fatalf("no staff should mean nil instructor: %+v", classes[1])
	}
}

func TestFetchDefaultsNameAndColor(t *testing.T) {
	days := fetch(t, []zoezi.Workout{
		{ID: 1, StartTime: "2026-09-01T09:00:00"},
	})
	class := days[0].Classes[0]
	if class.Name != "Okänt pass" {
		t.Fatalf("expected fallback name, got %q", class.Name)
	}
	if class.Color != "#666" {
		t.Fatalf("expected fallback color, got %q", class.Color)
	}
	if class.Site != "Okänd" {
		t.Fatalf("expected fallback site, got %q", class.Site)
	}
}

func TestParseTimestampVariants(t *testing.T) {
	tests := []struct {
		raw      string
		wantDate string
		wantTime string
	}{
		{"2026-09-01T17:30:00", "2026-09-01", "17:30"},
		{"2026-09-01 17:30:00", "2026-09-01", "17:30"},
		{"2026-09-01T17:30:00.123", "2026-09-01", "17:30"},
		{"2026-09-01T17:30:00+02:00", "2026-09-01", "17:30"},
		{"2026-09-01T17:30", "2026-09-01", "17:30"},
	}
	for _, tt := range tests {
		got, ok := parseTimestamp(tt.raw)
		if !ok {
			t.Errorf("parseTimestamp(%q) failed", tt.raw)
			continue
		}
		if got.Format("2006-01-02") != tt.wantDate || got.Format("15:04") != tt.wantTime {
			t.Errorf("parseTimestamp(%q) = %v", tt.raw, got)
		}
	}

	for _, raw := range []string{"", "kl 17:30", "2026-13-40T00:00:00"} {
		if _, ok := parseTimestamp(raw); ok {
			t.Errorf("parseTimestamp(%q) should fail", raw)
		}
	}
}
