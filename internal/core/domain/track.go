package domain

// Track represents a candidate track returned by the music catalog.
type Track struct {
	ID              string   // catalog identifier (video id)
	Title           string
	Artists         []string
	DurationSeconds int // 0 when the catalog did not report a duration
}

// HasDuration reports whether the catalog provided a duration for the track.
func (t Track) HasDuration() bool {
	return t.DurationSeconds > 0
}
