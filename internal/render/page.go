package render

// Element ids of the page regions
const (
	ShowsListID    = "showsList"
	EpisodesAreaID = "episodesArea"
)

// Page is everything one browser sees: the last search term, the two
// containers and an optional error banner.
type Page struct {
	Term         string `json:"term"`
	ShowsList    *Area  `json:"showsList"`
	EpisodesArea *Area  `json:"episodesArea"`
	Alert        string `json:"alert,omitempty"`
}

// NewPage returns a blank page. The episode area starts hidden and is only
// revealed once episodes have been rendered into it.
func NewPage() *Page {
	episodes := NewArea(EpisodesAreaID)
	episodes.Hide()
	return &Page{
		ShowsList:    NewArea(ShowsListID),
		EpisodesArea: episodes,
	}
}

// Normalize fills in containers missing from a page restored from older state.
func (p *Page) Normalize() {
	if p.ShowsList == nil {
		p.ShowsList = NewArea(ShowsListID)
	}
	if p.EpisodesArea == nil {
		p.EpisodesArea = NewArea(EpisodesAreaID)
		p.EpisodesArea.Hide()
	}
}
