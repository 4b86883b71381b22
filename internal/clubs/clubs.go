// internal/clubs/clubs.go
package clubs

// Club is one physical gym location. The club id is the site's own
// identifier; SiteID is the id the Zoezi scheduling and kiosk upstreams
// use for the same location. The two numbering schemes do not line up,
// which is why both are carried.
type Club struct {
	ID             int      `json:"id"`
	SiteID         int      `json:"siteId"`
	Name           string   `json:"name"`
	ShortName      string   `json:"shortName"`
	Slug           string   `json:"slug"`
	AgeRestriction int      `json:"ageRestriction,omitempty"`
	OpeningHours   string   `json:"openingHours"`
	Address        string   `json:"address"`
	Offerings      []string `json:"offerings"`
}

// Offering is a category of service, optionally restricted to specific
// sites. An empty Locations list means the offering exists at every club.
type Offering struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Href      string `json:"href"`
	Icon      string `json:"icon"`
	Locations []int  `json:"locations,omitempty"`
}

// OfferingAvailability pairs an offering with the clubs it is available at.
type OfferingAvailability struct {
	Offering
	AvailableAt []Club `json:"availableAt"`
	IsGlobal    bool   `json:"isGlobal"`
}

var directory = []Club{
	{
		ID:             1,
		SiteID:         1,
		Name:           "Vegastaden",
		ShortName:      "Vega",
		Slug:           "vegastaden",
		AgeRestriction: 18,
		OpeningHours:   "04–00",
		Address:        "Stjärntorget 1",
		Offerings:      []string{"gym", "grupptraning", "pt", "bastu"},
	},
	{
		ID:           2,
		SiteID:       3,
		Name:         "Västerhaninge",
		ShortName:    "VH",
		Slug:         "vasterhaninge",
		OpeningHours: "04–00",
		Address:      "Centrumvägen 4",
		Offerings:    []string{"gym", "grupptraning", "pt", "egym", "barndans", "ungdomstraning"},
	},
	{
		ID:           3,
		SiteID:       2,
		Name:         "Tungelsta",
		ShortName:    "Tung",
		Slug:         "tungelsta",
		OpeningHours: "04–23",
		Address:      "Madenvägen 5B",
		Offerings:    []string{"gym", "grupptraning", "pt", "yoga", "barndans", "ungdomstraning", "weighttrainer"},
	},
}

var offeringKeys = []string{
	"gym", "grupptraning", "pt", "egym", "yoga",
	"barndans", "ungdomstraning", "weighttrainer", "bastu",
}

var offerings = map[string]Offering{
	"gym":            {Key: "gym", Name: "Gym", Href: "/anlaggningar", Icon: "dumbbell"},
	"grupptraning":   {Key: "grupptraning", Name: "Gruppträning", Href: "/schema", Icon: "users"},
	"pt":             {Key: "pt", Name: "Personlig träning", Href: "/pt", Icon: "user-check"},
	"egym":           {Key: "egym", Name: "EGYM", Href: "/egym", Icon: "cpu", Locations: []int{3}},
	"yoga":           {Key: "yoga", Name: "Yoga", Href: "/yoga", Icon: "heart", Locations: []int{2}},
	"barndans":       {Key: "barndans", Name: "Barndans", Href: "/barndans", Icon: "music", Locations: []int{2, 3}},
	"ungdomstraning": {Key: "ungdomstraning", Name: "Ungdomsträning", Href: "/ungdomstraning", Icon: "zap", Locations: []int{2, 3}},
	"weighttrainer":  {Key: "weighttrainer", Name: "Weight Trainer", Href: "/schema", Icon: "target", Locations: []int{2}},
	"bastu":          {Key: "bastu", Name: "Bastu", Href: "/vegastaden", Icon: "flame", Locations: []int{1}},
}

// All returns every club in directory order.
func All() []Club {
	out := make([]Club, len(directory))
	copy(out, directory)
	return out
}

// BySlug returns the club with the given slug, or false.
func BySlug(slug string) (Club, bool) {
	for _, club := range directory {
		if club.Slug == slug {
			return club, true
		}
	}
	return Club{}, false
}

// ByID returns the club with the given club id, or false.
func ByID(id int) (Club, bool) {
	for _, club := range directory {
		if club.ID == id {
			return club, true
		}
	}
	return Club{}, false
}

// BySiteID returns the club with the given upstream site id, or false.
func BySiteID(siteID int) (Club, bool) {
	for _, club := range directory {
		if club.SiteID == siteID {
			return club, true
		}
	}
	return Club{}, false
}

// OfferingsFor returns the offerings available at the given club, in the
// club's own listing order. Unknown keys are skipped.
func OfferingsFor(club Club) []Offering {
	out := make([]Offering, 0, len(club.Offerings))
	for _, key := range club.Offerings {
		if offering, ok := offerings[key]; ok {
			out = append(out, offering)
		}
	}
	return out
}

// AllOfferings returns every offering in a stable order.
func AllOfferings() []Offering {
	out := make([]Offering, 0, len(offeringKeys))
	for _, key := range offeringKeys {
		out = append(out, offerings[key])
	}
	return out
}

// OfferingsWithLocations resolves each offering's Locations list against the
// directory. Offerings without an explicit location list are available at
// every club and flagged as global.
func OfferingsWithLocations() []OfferingAvailability {
	out := make([]OfferingAvailability, 0, len(offeringKeys))
	for _, key := range offeringKeys {
		offering := offerings[key]
		entry := OfferingAvailability{
			Offering: offering,
			IsGlobal: len(offering.Locations) == 0,
		}
		if entry.IsGlobal {
			entry.AvailableAt = All()
		} else {
			for _, club := range directory {
				for _, siteID := range offering.Locations {
					if club.SiteID == siteID {
						entry.AvailableAt = append(entry.AvailableAt, club)
					}
				}
			}
		}
		out = append(out, entry)
	}
	return out
}
