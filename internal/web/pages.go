package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/Belphemur/ShowFinder/internal/render"
)

// loadPage returns the browser's page, or a fresh one when nothing is stored.
func (s *Server) loadPage(r *http.Request) (*render.Page, *sessions.Session, string) {
	session, id := s.pageSession(r)

	data, ok := s.pages.Get(id)
	if !ok {
		return render.NewPage(), session, id
	}

	var page render.Page
	if err := json.Unmarshal(data, &page); err != nil {
		s.logger.Warn().Err(err).Str("pageID", id).Msg("Stored page is unreadable, starting over")
		return render.NewPage(), session, id
	}
	page.Normalize()
	return &page, session, id
}

// savePage stores the page and refreshes the session cookie. It must run
// before anything is written to the response body.
func (s *Server) savePage(w http.ResponseWriter, r *http.Request, session *sessions.Session, id string, page *render.Page) {
	data, err := json.Marshal(page)
	if err != nil {
		s.logger.Error().Err(err).Str("pageID", id).Msg("Failed to encode page")
	} else {
		s.pages.Set(id, data)
	}

	if err := session.Save(r, w); err != nil {
		s.logger.Error().Err(err).Msg("Failed to save session")
	}
}
