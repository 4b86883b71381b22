// internal/staffing/status.go
package staffing

import (
	"strconv"
	"strings"
	"time"
)

// StatusKind classifies a club's staffing right now.
type StatusKind string

const (
	StatusStaffedNow   StatusKind = "staffed-now"
	StatusStaffedToday StatusKind = "staffed-today"
	StatusNextStaffed  StatusKind = "next-staffed"
	StatusUnstaffed    StatusKind = "unstaffed"
)

// Status is the derived presentation of a club's staffing. It is computed
// on demand and never stored.
type Status struct {
	Status  StatusKind `json:"status"`
	Text    string     `json:"text"`
	Subtext string     `json:"subtext,omitempty"`
}

// DeriveStatus classifies a club at the given wall-clock time. Time
// comparisons are in minutes since midnight; a slot contains "now" when
// open <= now < close.
func DeriveStatus(today *TodayResponse, week *WeekResponse, clubID int, now time.Time) Status {
	club, ok := clubToday(today, clubID)
	if !ok {
		return Status{Status: StatusUnstaffed, Text: "Obemannat"}
	}

	currentMinutes := now.Hour()*60 + now.Minute()

	if club.IsCurrentlyStaffed {
		status := Status{Status: StatusStaffedNow, Text: "Bemannat nu"}
		for _, slot := range club.Slots {
			open, okOpen := clockMinutes(slot.Open)
			close, okClose := clockMinutes(slot.Close)
			if okOpen && okClose && currentMinutes >= open && currentMinutes < close {
				status.Subtext = "Till " + slot.Close
				break
			}
		}
		return status
	}

	var remaining []string
	for _, slot := range club.Slots {
		if close, ok := clockMinutes(slot.Close); ok && close > currentMinutes {
			remaining = append(remaining, slot.Open+"-"+slot.Close)
		}
	}
	if len(remaining) > 0 {
		return Status{
			Status:  StatusStaffedToday,
			Text:    "Bemannat idag",
			Subtext: strings.Join(remaining, ", "),
		}
	}

	if day, slot, ok := nextStaffedSlot(today, week, clubID, currentMinutes); ok {
		return Status{
			Status:  StatusNextStaffed,
			Text:    "Nästa: " + day,
			Subtext: slot.Open,
		}
	}

	return Status{Status: StatusUnstaffed, Text: "Obemannat"}
}

// nextStaffedSlot scans the week table forward for the first staffed slot,
// skipping today's slots that have already opened.
func nextStaffedSlot(today *TodayResponse, week *WeekResponse, clubID int, currentMinutes int) (string, Slot, bool) {
	if week == nil {
		return "", Slot{}, false
	}

	todayDate := ""
	if today != nil {
		todayDate = today.Date
	}

	key := strconv.Itoa(clubID)
	for _, day := range week.Days {
		club, ok := day.Clubs[key]
		if !ok || !club.Staffed || len(club.Slots) == 0 {
			continue
		}
		isToday := day.Date == todayDate && todayDate != ""
		for _, slot := range club.Slots {
			open, ok := clockMinutes(slot.Open)
			if !ok {
				continue
			}
			if isToday && open <= currentMinutes {
				continue
			}
			label := day.DayName
			if isToday {
				label = "Idag"
			}
			return label, slot, true
		}
	}
	return "", Slot{}, false
}

func clubToday(today *TodayResponse, clubID int) (ClubStaffing, bool) {
	if today == nil {
		return ClubStaffing{}, false
	}
	club, ok := today.Clubs[strconv.Itoa(clubID)]
	return club, ok
}

func clockMinutes(clock string) (int, bool) {
	hour, minute, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hour)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
