package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Belphemur/ShowFinder/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer turns normalized shows and episodes into markup.
type Renderer struct {
	tmpl *template.Template
}

// cardData is what the show card template sees
type cardData struct {
	ID      int
	Name    string
	Image   string
	Summary template.HTML
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer is NewRenderer for package-level initialization and tests.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// PopulateShows replaces the contents of c with one card per show, in order.
// Nothing in c changes when rendering fails.
func (r *Renderer) PopulateShows(c Container, shows []models.Show) error {
	blocks := make([]template.HTML, 0, len(shows))
	for _, show := range shows {
		block, err := r.block("show_card", cardData{
			ID:      show.ID,
			Name:    show.Name,
			Image:   show.Image,
			Summary: SanitizeSummary(show.Summary),
		})
		if err != nil {
			return fmt.Errorf("render show %d: %w", show.ID, err)
		}
		blocks = append(blocks, block)
	}

	c.Empty()
	for _, block := range blocks {
		c.Append(block)
	}
	return nil
}

// PopulateEpisodes replaces the contents of c with one list item per episode
// and reveals it.
func (r *Renderer) PopulateEpisodes(c Container, episodes []models.Episode) error {
	blocks := make([]template.HTML, 0, len(episodes))
	for _, episode := range episodes {
		block, err := r.block("episode_item", episode)
		if err != nil {
			return fmt.Errorf("render episode %d: %w", episode.ID, err)
		}
		blocks = append(blocks, block)
	}

	c.Empty()
	for _, block := range blocks {
		c.Append(block)
	}
	c.Show()
	return nil
}

// RenderPage writes the full HTML document for page.
func (r *Renderer) RenderPage(w io.Writer, page *Page) error {
	page.Normalize()
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) block(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
