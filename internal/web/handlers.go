package web

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/render"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, session, id := s.loadPage(r)
	s.savePage(w, r, session, id, page)
	s.writePage(w, r, http.StatusOK, page)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	page, session, id := s.loadPage(r)

	err := s.catalog.SearchAndDisplay(r.Context(), term, page)
	status := statusFor(err)
	s.reportError(r, err, status)

	s.savePage(w, r, session, id, page)
	s.writePage(w, r, status, page)
}

func (s *Server) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	showID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid show id", http.StatusBadRequest)
		return
	}

	page, session, id := s.loadPage(r)

	err = s.catalog.EpisodesAndDisplay(r.Context(), showID, page)
	status := statusFor(err)
	s.reportError(r, err, status)

	s.savePage(w, r, session, id, page)
	s.writePage(w, r, status, page)
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	shows, err := s.client.SearchShows(r.Context(), term)
	if err != nil {
		status := statusFor(err)
		s.reportError(r, err, status)
		hlog.FromRequest(r).Error().Err(err).Str("term", term).Msg("API search failed")
		writeError(w, status, err.Error())
		return
	}
	if shows == nil {
		shows = []models.Show{}
	}
	writeJSON(w, http.StatusOK, shows)
}

func (s *Server) handleAPIEpisodes(w http.ResponseWriter, r *http.Request) {
	showID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid show id")
		return
	}

	episodes, err := s.client.GetEpisodes(r.Context(), showID)
	if err != nil {
		status := statusFor(err)
		s.reportError(r, err, status)
		hlog.FromRequest(r).Error().Err(err).Int("showID", showID).Msg("API episodes failed")
		writeError(w, status, err.Error())
		return
	}
	if episodes == nil {
		episodes = []models.Episode{}
	}
	writeJSON(w, http.StatusOK, episodes)
}

// writePage renders the page fully before sending the status line, so a
// template failure still produces a clean 500.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, page *render.Page) {
	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, page); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to render page")
		s.reportError(r, err, http.StatusInternalServerError)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
