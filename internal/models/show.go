package models

// Show is a TV show as displayed on a search result card
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // may contain HTML markup
	Image   string `json:"image"`   // poster URL, never empty after normalization
}
