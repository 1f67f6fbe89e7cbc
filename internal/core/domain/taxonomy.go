package domain

// KeywordCategory associates a taxonomy label with the keywords that signal it.
type KeywordCategory struct {
	Name     string
	Keywords []string
}

// MoodKeywords maps each mood to its trigger keywords. Declaration order is
// detection precedence: the first matching mood becomes the primary mood.
var MoodKeywords = []KeywordCategory{
	{Name: "upbeat", Keywords: []string{"excited", "happy", "energetic", "fun", "celebration", "party", "awesome", "amazing"}},
	{Name: "calm", Keywords: []string{"peaceful", "relaxed", "serene", "quiet", "meditation", "gentle", "soft"}},
	{Name: "dramatic", Keywords: []string{"intense", "powerful", "emotional", "serious", "dramatic", "tension"}},
	{Name: "motivational", Keywords: []string{"success", "achieve", "goal", "motivation", "inspire", "dream", "work", "grind"}},
	{Name: "energetic", Keywords: []string{"fast", "quick", "rush", "speed", "action", "move", "go", "run"}},
	{Name: "relaxed", Keywords: []string{"chill", "easy", "slow", "comfortable", "laid-back", "casual"}},
}

// ThemeKeywords maps each theme to its trigger keywords, same precedence rule.
var ThemeKeywords = []KeywordCategory{
	{Name: "fitness", Keywords: []string{"workout", "exercise", "gym", "fitness", "muscle", "training", "health"}},
	{Name: "cooking", Keywords: []string{"recipe", "cook", "food", "kitchen", "ingredients", "delicious", "taste"}},
	{Name: "travel", Keywords: []string{"travel", "trip", "journey", "adventure", "explore", "destination", "vacation"}},
	{Name: "tech", Keywords: []string{"technology", "app", "software", "digital", "code", "tech", "innovation"}},
	{Name: "lifestyle", Keywords: []string{"daily", "routine", "life", "lifestyle", "personal", "self-care"}},
	{Name: "educational", Keywords: []string{"learn", "education", "tutorial", "how-to", "explain", "guide", "tips"}},
}

// Genres lists the accepted genre preference values, "any" included.
var Genres = []string{"pop", "electronic", "chill", "rock", "hip-hop", "classical", "ambient", "any"}

// Moods lists the accepted mood preference values, "any" included.
var Moods = []string{"upbeat", "calm", "dramatic", "energetic", "relaxed", "motivational", "any"}

// ContentTypes lists the accepted content type values, "other" included.
var ContentTypes = []string{"comedy", "educational", "lifestyle", "fitness", "cooking", "travel", "tech", "other"}

// ThemeGeneral is the theme assigned when no theme keywords match.
const ThemeGeneral = "general"

// PreferenceAny is the sentinel for "no genre/mood preference".
const PreferenceAny = "any"

// ContentTypeOther is the sentinel for unclassified content.
const ContentTypeOther = "other"

// IsGenre reports whether s is a valid genre preference.
func IsGenre(s string) bool { return contains(Genres, s) }

// IsMood reports whether s is a valid mood preference.
func IsMood(s string) bool { return contains(Moods, s) }

// IsContentType reports whether s is a valid content type.
func IsContentType(s string) bool { return contains(ContentTypes, s) }

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
