package schedule

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "BodyPump", "BodyPump"},
		{"zero width stripped", "Body\u200bPump\u2060", "BodyPump"},
		{"soft hyphen stripped", "Body\u00adPump", "BodyPump"},
		{"bom stripped", "\ufeffBodyPump", "BodyPump"},
		{"swedish letters kept", "Gruppträning på Väst", "Gruppträning på Väst"},
		{"trademark kept", "BODYPUMP™", "BODYPUMP™"},
		{"emoji stripped", "Yoga \U0001f9d8 flow", "Yoga flow"},
		{"whitespace collapsed", "  Body   Pump \t", "Body Pump"},
		{"nbsp collapsed", "Body\u00a0\u00a0Pump", "Body Pump"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"Body\u200bPump",
		"  Yoga \U0001f9d8  med\u00adJohanna  ",
		"BODYPUMP™ & CORE",
		"Gruppträning åäö ÅÄÖ",
	}
	for _, input := range inputs {
		once := CleanText(input)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"tags become spaces", "<p>Ett pass</p><p>för alla</p>", "Ett pass för alla"},
		{"nbsp entity", "Tufft&nbsp;pass", "Tufft pass"},
		{"amp entity", "Styrka &amp; kondition", "Styrka & kondition"},
		{"nested markup", `<div class="x"><b>45</b> minuter</div>`, "45 minuter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"BODYPUMP™", CategoryStrength},
		{"BodyCombat", CategoryCardio},
		{"BodyAttack 45", CategoryCardio},
		{"YinYoga", CategoryMindbody},
		{"Pilates", CategoryMindbody},
		{"RPM", CategoryCycle},
		{"Sprint", CategoryCycle},
		{"The Trip", CategoryCycle},
		{"LES MILLS GRIT", CategoryHIIT},
		{"Tabata", CategoryHIIT},
		{"Hardcore", CategoryCore},
		{"BodyShape", CategoryToning},
		{"Seniorgympa", CategoryOther},
	}
	for _, tt := range tests {
		if got := ClassCategory(tt.name); got != tt.want {
			t.Errorf("ClassCategory(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestClassCategoryFirstMatchWins(t *testing.T) {
	// "pump" appears before "core" in the table.
	if got := ClassCategory("BodyPump Core Edition"); got != CategoryStrength {
		t.Fatalf("expected strength, got %q", got)
	}
}
