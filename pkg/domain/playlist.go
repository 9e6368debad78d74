package domain

// Playlist represents a normalized mood-matched playlist from the external
// search provider. Provider-specific fields never leak past the adapter.
type Playlist struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	TotalTracks int    `json:"total_tracks"`
	Owner       string `json:"owner"`
}
