package ytmusic

import "github.com/ewilliams-labs/findbgm/internal/core/domain"

// searchResponse is the catalog search payload.
type searchResponse struct {
	Results []ytTrack `json:"results"`
}

// ytTrack represents one song record on the wire. DurationSeconds is absent
// for some uploads; zero means unreported.
type ytTrack struct {
	VideoID         string     `json:"videoId"`
	Title           string     `json:"title"`
	Artists         []ytArtist `json:"artists"`
	DurationSeconds int        `json:"duration_seconds"`
}

type ytArtist struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// toDomain converts a wire track to a domain.Track.
func (t ytTrack) toDomain() domain.Track {
	artists := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		artists = append(artists, artist.Name)
	}
	return domain.Track{
		ID:              t.VideoID,
		Title:           t.Title,
		Artists:         artists,
		DurationSeconds: t.DurationSeconds,
	}
}
