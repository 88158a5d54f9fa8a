package render

import (
	"html/template"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Container is a page region that rendered markup is written into.
type Container interface {
	// Empty discards everything previously appended.
	Empty()
	// Append adds one rendered block after the existing ones.
	Append(block template.HTML)
	// Hide marks the container as not visible.
	Hide()
	// Show marks the container as visible.
	Show()
}

var _ Container = (*Area)(nil)

// Area is the Container used by pages. It survives between requests as JSON.
type Area struct {
	ID     string          `json:"id"`
	Items  []template.HTML `json:"items"`
	Hidden bool            `json:"hidden"`
}

// NewArea returns an empty, visible area with the given element id
func NewArea(id string) *Area {
	return &Area{ID: id}
}

func (a *Area) Empty() {
	a.Items = nil
}

func (a *Area) Append(block template.HTML) {
	a.Items = append(a.Items, block)
}

func (a *Area) Hide() {
	a.Hidden = true
}

func (a *Area) Show() {
	a.Hidden = false
}

// HTML joins the area's blocks in order.
func (a *Area) HTML() template.HTML {
	var b strings.Builder
	for _, item := range a.Items {
		b.WriteString(string(item))
	}
	return template.HTML(b.String())
}

// ShowIDs reads the data-show-id attribute of every show card in the area, in order.
// Cards whose attribute is not an integer are skipped.
func (a *Area) ShowIDs() []int {
	if len(a.Items) == 0 {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(a.HTML())))
	if err != nil {
		return nil
	}

	var ids []int
	doc.Find("[data-show-id]").Each(func(_ int, s *goquery.Selection) {
		raw, _ := s.Attr("data-show-id")
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return
		}
		ids = append(ids, id)
	})
	return ids
}

// HasShow reports whether a card for the show id is present in the area.
func (a *Area) HasShow(id int) bool {
	return slices.Contains(a.ShowIDs(), id)
}
