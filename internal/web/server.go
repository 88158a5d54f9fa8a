package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/render"
	"github.com/Belphemur/ShowFinder/internal/services"
	"github.com/Belphemur/ShowFinder/internal/store"
	"github.com/Belphemur/ShowFinder/internal/tvmaze"
)

// Options configures the web server
type Options struct {
	// Sentry enables panic and error reporting through the global Sentry hub.
	Sentry bool
}

// Server serves the search page and the JSON API
type Server struct {
	catalog  services.Catalog
	client   tvmaze.Client
	renderer *render.Renderer
	pages    store.Store
	sessions sessions.Store
	opts     Options
	logger   zerolog.Logger
}

// NewServer creates a new web server. Page state is kept in pages and
// browsers are matched to their page through the sessions store.
func NewServer(catalog services.Catalog, client tvmaze.Client, renderer *render.Renderer, pages store.Store, sessionStore sessions.Store, opts Options) *Server {
	return &Server{
		catalog:  catalog,
		client:   client,
		renderer: renderer,
		pages:    pages,
		sessions: sessionStore,
		opts:     opts,
		logger:   config.GetLogger(),
	}
}

// Handler builds the router with all routes and middleware
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.useMiddleware(r)

	r.Get("/", s.handleIndex)
	r.Get("/search", s.handleSearch)
	r.Post("/shows/{id}/episodes", s.handleEpisodes)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search/shows", s.handleAPISearch)
		r.Get("/shows/{id}/episodes", s.handleAPIEpisodes)
	})

	r.Get("/healthz", handleHealth)
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
