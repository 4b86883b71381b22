// internal/schedule/category.go
package schedule

import "strings"

// Category tags used by the schedule UI for filtering and icon lookup.
const (
	CategoryStrength = "strength"
	CategoryCardio   = "cardio"
	CategoryMindbody = "mindbody"
	CategoryCycle    = "cycle"
	CategoryHIIT     = "hiit"
	CategoryCore     = "core"
	CategoryToning   = "toning"
	CategoryOther    = "other"
)

// Keyword table evaluated in order; the first matching row wins. Most
// entries are Les Mills program names.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryStrength, []string{"pump", "strength"}},
	{CategoryCardio, []string{"combat", "attack"}},
	{CategoryMindbody, []string{"balance", "yoga", "yinyoga"}},
	{CategoryMindbody, []string{"pilates"}},
	{CategoryCycle, []string{"rpm", "sprint", "trip", "cycling"}},
	{CategoryHIIT, []string{"grit", "hiit", "tabata", "wod"}},
	{CategoryCore, []string{"core"}},
	{CategoryToning, []string{"shape"}},
}

// ClassCategory maps a class display name to a category tag via
// case-insensitive substring matching.
func ClassCategory(name string) string {
	lower := strings.ToLower(name)
	for _, row := range categoryKeywords {
		for _, keyword := range row.keywords {
			if strings.Contains(lower, keyword) {
				return row.category
			}
		}
	}
	return CategoryOther
}
