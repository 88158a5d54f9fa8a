package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/Belphemur/ShowFinder/internal/config"
)

const (
	sessionName  = "showfinder-session"
	pageIDKey    = "page_id"
	minSecretLen = 32
)

// NewSessionStore creates the cookie store that carries each browser's page id.
// A short or empty secret is replaced by a random key, which invalidates
// existing cookies on restart.
func NewSessionStore(secret string, ttl time.Duration) *sessions.CookieStore {
	key := []byte(secret)
	if len(key) < minSecretLen {
		logger := config.GetLogger()
		logger.Warn().Int("length", len(key)).Msg("Session secret missing or too short, using a random key")
		key = securecookie.GenerateRandomKey(minSecretLen)
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return cs
}

// pageSession returns the browser's session and its page id, assigning a new id
// when the cookie is missing, tampered with or holds something else.
func (s *Server) pageSession(r *http.Request) (*sessions.Session, string) {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil {
		// gorilla still hands back a fresh session when decoding fails
		s.logger.Debug().Err(err).Msg("Discarding unreadable session cookie")
	}
	if session == nil {
		session = sessions.NewSession(s.sessions, sessionName)
		session.IsNew = true
	}

	if raw, ok := session.Values[pageIDKey].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			return session, id.String()
		}
	}

	id := uuid.NewString()
	session.Values[pageIDKey] = id
	return session, id
}
