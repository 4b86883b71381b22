package staffing

import (
	"testing"
	"time"
)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2026-08-31 "+clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return parsed
}

func todayTable(clubs map[string]ClubStaffing) *TodayResponse {
	return &TodayResponse{
		Date:    "2026-08-31",
		DayID:   "monday",
		DayName: "Måndag",
		Clubs:   clubs,
	}
}

func TestDeriveStatusNoData(t *testing.T) {
	got := DeriveStatus(nil, nil, 1, at(t, "10:00"))
	if got.Status != StatusUnstaffed || got.Text != "Obemannat" {
		t.Fatalf("unexpected status: %+v", got)
	}

	got = DeriveStatus(todayTable(map[string]ClubStaffing{}), nil, 1, at(t, "10:00"))
	if got.Status != StatusUnstaffed {
		t.Fatalf("missing club should be unstaffed: %+v", got)
	}
}

func TestDeriveStatusStaffedNow(t *testing.T) {
	today := todayTable(map[string]ClubStaffing{
		"1": {
			ID:                 1,
			IsCurrentlyStaffed: true,
			Slots:              []Slot{{Open: "09:00", Close: "12:00"}},
		},
	})

	got := DeriveStatus(today, nil, 1, at(t, "10:30"))
	if got.Status != StatusStaffedNow || got.Text != "Bemannat nu" {
		t.Fatalf("unexpected status: %+v", got)
	}
	if got.Subtext != "Till 12:00" {
		t.Fatalf("unexpected subtext: %q", got.Subtext)
	}
}

func TestDeriveStatusStaffedNowWithoutMatchingSlot(t *testing.T) {
	// Flag set but no slot contains now: keep the status, drop the subtext.
	today := todayTable(map[string]ClubStaffing{
		"1": {
			ID:                 1,
			IsCurrentlyStaffed: true,
			Slots:              []Slot{{Open: "14:00", Close: "18:00"}},
		},
	})

	got := DeriveStatus(today, nil, 1, at(t, "10:30"))
	if got.Status != StatusStaffedNow || got.Subtext != "" {
		t.Fatalf("unexpected status: %+v", got)
	}
}

func TestDeriveStatusCloseIsExclusive(t *testing.T) {
	today := todayTable(map[string]ClubStaffing{
		"1": {
			ID:                 1,
			IsCurrentlyStaffed: true,
			Slots:              []Slot{{Open: "09:00", Close: "12:00"}},
		},
	})

	got := DeriveStatus(today, nil, 1, at(t, "12:00"))
	if got.Subtext != "" {
		t.Fatalf("slot should not contain its close time: %+v", got)
	}

	got = DeriveStatus(today, nil, 1, at(t, "09:00"))
	if got.Subtext != "Till 12:00" {
		t.Fatalf("slot should contain its open time: %+v", got)
	}
}

func TestDeriveStatusStaffedLaterToday(t *testing.T) {
	today := todayTable(map[string]ClubStaffing{
		"2": {
			ID:    2,
			Slots: []Slot{{Open: "18:00", Close: "19:00"}},
		},
	})

	got := DeriveStatus(today, nil, 2, at(t, "10:00"))
	if got.Status != StatusStaffedToday || got.Text != "Bemannat idag" {
		t.Fatalf("unexpected status: %+v", got)
	}
	if got.Subtext != "18:00-19:00" {
		t.Fatalf("unexpected subtext: %q", got.Subtext)
	}
}

func TestDeriveStatusJoinsRemainingSlots(t *testing.T) {
	today := todayTable(map[string]ClubStaffing{
		"2": {
			ID: 2,
			Slots: []Slot{
				{Open: "07:00", Close: "09:00"},
				{Open: "12:00", Close: "14:00"},
				{Open: "18:00", Close: "19:00"},
			},
		},
	})

	got := DeriveStatus(today, nil, 2, at(t, "10:00"))
	if got.Subtext != "12:00-14:00, 18:00-19:00" {
		t.Fatalf("passed slots should be dropped: %q", got.Subtext)
	}
}

func TestDeriveStatusNextStaffedTomorrow(t *testing.T) {
	today := todayTable(map[string]ClubStaffing{
		"3": {
			ID:    3,
			Slots: []Slot{{Open: "08:00", Close: "12:00"}},
		},
	})
	week := &WeekResponse{Days: []WeekDay{
		{
			Date:    "2026-08-31",
			DayName: "Måndag",
			Clubs: map[string]ClubStaffing{
				"3": {ID: 3, Staffed: true, Slots: []Slot{{Open: "08:00", Close: "12:00"}}},
			},
		},
		{
			Date:    "2026-09-01",
			DayName: "Tisdag",
			Clubs: map[string]ClubStaffing{
				"3": {ID: 3, Staffed: true, Slots: []Slot{{Open: "08:00", Close: "12:00"}}},
			},
		},
	}}

	// All of today's slots have passed at 20:00.
	got := DeriveStatus(today, week, 3, at(t, "20:00"))
	if got.Status != StatusNextStaffed {
		t.Fatalf("unexpected status: %+v", got)
	}
	if got.Text != "Nästa: Tisdag" || got.Subtext != "08:00" {
		t.Fatalf("unexpected next slot: %+v", got)
	}
}

func TestDeriveStatusNextStaffedLaterTodayViaWeek(t *testing.T) {
	// Today's table has no remaining slots but the week table still has a
	// future opening today; it is labelled "Idag".
	today := todayTable(map[string]ClubStaffing{
		"3": {ID: 3},
	})
	week := &WeekResponse{Days: []WeekDay{
		{
			Date:    "2026-08-31",
			DayName: "Måndag",
			Clubs: map[string]ClubStaffing{
				"3": {ID: 3, Staffed: true, Slots: []Slot{{Open: "06:00", Close: "08:00"}, {Open: "16:00", Close: "19:00"}}},
			},
		},
	}}

	got := DeriveStatus(today, week, 3, at(t, "10:00"))
	if got.Status != StatusNextStaffed || got.Text != "Nästa: Idag" || got.Subtext != "16:00" {
		t.Fatalf("unexpected status: %+v", got)
	}
}

func TestDeriveStatusFullyUnstaffed(t *testing.T) {
	today := todayTable(map[string]ClubStaffing{
		"3": {ID: 3},
	})
	week := &WeekResponse{Days: []WeekDay{
		{Date: "2026-08-31", DayName: "Måndag", Clubs: map[string]ClubStaffing{"3": {ID: 3}}},
	}}

	got := DeriveStatus(today, week, 3, at(t, "10:00"))
	if got.Status != StatusUnstaffed || got.Text != "Obemannat" {
		t.Fatalf("unexpected status: %+v", got)
	}
}

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		clock string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9", 0, false},
		{"", 0, false},
		{"ab:cd", 0, false},
	}
	for _, tt := range tests {
		got, ok := clockMinutes(tt.clock)
		if got != tt.want || ok != tt.ok {
			t.Errorf("clockMinutes(%q) = %d, %v; want %d, %v", tt.clock, got, ok, tt.want, tt.ok)
		}
	}
}
