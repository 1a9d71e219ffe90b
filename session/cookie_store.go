package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type CookieOptions struct {
	Path   string
	Domain string
	Secure bool
	MaxAge time.Duration
}

// CookieStore keeps the token in an HttpOnly cookie of the current request.
// A token set or cleared during the request is visible to later reads in the same request.
// Parallel backend calls of one request share it.
type CookieStore struct {
	mu      sync.Mutex
	c       *gin.Context
	opts    CookieOptions
	changed bool
	token   string
}

func NewCookieStore(c *gin.Context, opts CookieOptions) *CookieStore {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStore{c: c, opts: opts}
}

func (s *CookieStore) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.changed {
		if s.token == "" {
			return "", ErrNoToken
		}
		return s.token, nil
	}
	token, err := s.c.Cookie(Key)
	if err != nil || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *CookieStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed, s.token = true, token
	s.setCookie(token, int(s.opts.MaxAge.Seconds()))
	return nil
}

func (s *CookieStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed, s.token = true, ""
	s.setCookie("", -1)
	return nil
}

func (s *CookieStore) setCookie(value string, maxAge int) {
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     Key,
		Value:    value,
		Path:     s.opts.Path,
		Domain:   s.opts.Domain,
		MaxAge:   maxAge,
		Secure:   s.opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
