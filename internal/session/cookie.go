package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// NewID returns a fresh random session ID.
func NewID() string {
	return uuid.NewString()
}

// IDFromRequest returns the session ID carried by r, rejecting anything that
// is not a UUID.
func IDFromRequest(r *http.Request, cfg CookieConfig) (string, bool) {
	c, err := r.Cookie(cfg.Name)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false
	}

	return id.String(), true
}

// Ensure returns the request's session ID, minting one and setting the
// cookie when there is none.
func Ensure(w http.ResponseWriter, r *http.Request, cfg CookieConfig) string {
	if id, ok := IDFromRequest(r, cfg); ok {
		SetCookie(w, cfg, id)

		return id
	}

	id := NewID()
	SetCookie(w, cfg, id)

	return id
}

// SetCookie writes (or refreshes) the session cookie.
func SetCookie(w http.ResponseWriter, cfg CookieConfig, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    id,
		Path:     "/contact",
		MaxAge:   int(cfg.TTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
