package domain

import "testing"

// TestTaxonomyOrder pins the declaration order of the keyword tables; it is
// the detection precedence, so reordering entries changes behavior.
func TestTaxonomyOrder(t *testing.T) {
	wantMoods := []string{"upbeat", "calm", "dramatic", "motivational", "energetic", "relaxed"}
	if len(MoodKeywords) != len(wantMoods) {
		t.Fatalf("MoodKeywords has %d entries, want %d", len(MoodKeywords), len(wantMoods))
	}
	for i, want := range wantMoods {
		if MoodKeywords[i].Name != want {
			t.Errorf("MoodKeywords[%d] = %q, want %q", i, MoodKeywords[i].Name, want)
		}
		if len(MoodKeywords[i].Keywords) == 0 {
			t.Errorf("mood %q has no keywords", want)
		}
	}

	wantThemes := []string{"fitness", "cooking", "travel", "tech", "lifestyle", "educational"}
	if len(ThemeKeywords) != len(wantThemes) {
		t.Fatalf("ThemeKeywords has %d entries, want %d", len(ThemeKeywords), len(wantThemes))
	}
	for i, want := range wantThemes {
		if ThemeKeywords[i].Name != want {
			t.Errorf("ThemeKeywords[%d] = %q, want %q", i, ThemeKeywords[i].Name, want)
		}
	}
}

func TestPreferenceMembership(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		value string
		want  bool
	}{
		{"known genre", IsGenre, "pop", true},
		{"genre any", IsGenre, "any", true},
		{"unknown genre", IsGenre, "polka", false},
		{"known mood", IsMood, "dramatic", true},
		{"mood any", IsMood, "any", true},
		{"unknown mood", IsMood, "gloomy", false},
		{"known content type", IsContentType, "fitness", true},
		{"content type other", IsContentType, "other", true},
		{"unknown content type", IsContentType, "sports", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.check(tc.value); got != tc.want {
				t.Fatalf("membership(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}
