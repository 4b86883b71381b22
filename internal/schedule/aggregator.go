// internal/schedule/aggregator.go
package schedule

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/zoezi"
)

const defaultDaysAhead = 7

// Workout categories that must never reach the public schedule.
const (
	categoryVirtual    = 5  // virtual-only Les Mills classes
	categoryStaffBlock = 10 // internal staff blocks ("Bemannade tider")
)

var siteNames = map[int]string{
	1: "Vegastaden",
	2: "Tungelsta",
	3: "Västerhaninge",
}

var dayNames = [7]string{"Söndag", "Måndag", "Tisdag", "Onsdag", "Torsdag", "Fredag", "Lördag"}

// ClassItem is one schedulable class as the UI consumes it.
type ClassItem struct {
	ID              int     `json:"id"`
	Time            string  `json:"time"`
	EndTime         string  `json:"endTime"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Color           string  `json:"color"`
	Spots           int     `json:"spots"`
	SpotsLeft       int     `json:"spotsLeft"`
	Site            string  `json:"site"`
	SiteID          int     `json:"siteId"`
	Room            string  `json:"room"`
	ExtraTitle      string  `json:"extraTitle"`
	Bookable        bool    `json:"bookable"`
	Category        string  `json:"category"`
	Instructor      *string `json:"instructor"`
	InstructorImage *string `json:"instructorImage"`
}

// DaySchedule groups the classes of one calendar date.
type DaySchedule struct {
	Date    string      `json:"date"`
	DayName string      `json:"dayName"`
	Classes []ClassItem `json:"classes"`
}

// WorkoutSource is the slice of the Zoezi client the aggregator needs.
type WorkoutSource interface {
	GetWorkouts(ctx context.Context, fromDate, toDate string) ([]zoezi.Workout, error)
	FileDownloadURL(key string) string
}

// Aggregator turns raw Zoezi workouts into a per-day schedule.
type Aggregator struct {
	source WorkoutSource
	now    func() time.Time
}

func NewAggregator(source WorkoutSource) *Aggregator {
	return &Aggregator{source: source, now: time.Now}
}

// Fetch requests all workouts from today through today+daysAhead and groups
// them into day schedules. daysAhead values below 1 fall back to a week.
func (a *Aggregator) Fetch(ctx context.Context, daysAhead int) ([]DaySchedule, error) {
	if daysAhead < 1 {
		daysAhead = defaultDaysAhead
	}

	today := a.now()
	fromDate := today.Format("2006-01-02")
	toDate := today.AddDate(0, 0, daysAhead).Format("2006-01-02")

	workouts, err := a.source.GetWorkouts(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}

	return a.build(ctx, workouts), nil
}

func (a *Aggregator) build(ctx context.Context, workouts []zoezi.Workout) []DaySchedule {
	byDate := map[string][]ClassItem{}

	for _, workout := range workouts {
		categoryID := workout.WorkoutType.CategoryID
		if categoryID == categoryVirtual || categoryID == categoryStaffBlock {
			continue
		}

		start, ok := parseTimestamp(workout.StartTime)
		if !ok {
			log.Ctx(ctx).Debug().
				Int("workout_id", workout.ID).
				Str("start_time", workout.StartTime).
				Msg("Dropping workout with unparseable start time")
			continue
		}
		date := start.Format("2006-01-02")

		endTime := ""
		if end, ok := parseTimestamp(workout.EndTime); ok {
			endTime = end.Format("15:04")
		}

		rawName := workout.WorkoutType.Name
		if rawName == "" {
			rawName = "Okänt pass"
		}
		name := CleanText(rawName)

		color := workout.WorkoutType.Color
		if color == "" {
			color = "#666"
		}

		site, ok := siteNames[workout.SiteID]
		if !ok {
			site = "Okänd"
		}

		byDate[date] = append(byDate[date], ClassItem{
			ID:              workout.ID,
			Time:            start.Format("15:04"),
			EndTime:         endTime,
			Name:            name,
			Description:     StripHTML(workout.WorkoutType.Description),
			Color:           color,
			Spots:           workout.Space,
			SpotsLeft:       workout.Space - workout.NumBooked,
			Site:            site,
			SiteID:          workout.SiteID,
			Room:            roomName(workout.Resources),
			ExtraTitle:      CleanText(workout.ExtraTitle),
			Bookable:        workout.BookableForCustomer,
			Category:        ClassCategory(name),
			Instructor:      instructorName(workout.Staffs),
			InstructorImage: a.instructorImage(workout.Staffs),
		})
	}

	days := make([]DaySchedule, 0, len(byDate))
	for date, classes := range byDate {
		sort.SliceStable(classes, func(i, j int) bool {
			return classes[i].Time < classes[j].Time
		})
		days = append(days, DaySchedule{
			Date:    date,
			DayName: dayName(date),
			Classes: classes,
		})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

// timestampLayouts covers the separator, fraction and offset variants Zoezi
// has been seen to emit.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	normalized := strings.Replace(raw, " ", "T", 1)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return dayNames[int(t.Weekday())]
}

// roomName prefers the resource tagged as a room, falling back to the first
// resource. Zoezi stores the room name in the lastname field.
func roomName(resources []zoezi.Resource) string {
	if len(resources) == 0 {
		return ""
	}
	room := resources[0]
	for _, resource := range resources {
		if resource.ResourceType == "room" {
			room = resource
			break
		}
	}
	name := room.Lastname
	if name == "" {
		name = room.Firstname
	}
	return CleanText(name)
}

func instructorName(staffs []zoezi.Staff) *string {
	if len(staffs) == 0 {
		return nil
	}
	first := CleanText(staffs[0].Firstname)
	last := CleanText(staffs[0].Lastname)

	var name string
	switch {
	case first != "" && last != "":
		name = first + " " + last
	case first != "":
		name = first
	case last != "":
		name = last
	default:
		return nil
	}
	return &name
}

func (a *Aggregator) instructorImage(staffs []zoezi.Staff) *string {
	if len(staffs) == 0 || staffs[0].ImageKey == "" {
		return nil
	}
	url := a.source.FileDownloadURL(staffs[0].ImageKey)
	return &url
}
