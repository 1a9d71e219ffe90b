package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/princinho/menufront/api"
	"github.com/princinho/menufront/filter"
	"github.com/princinho/menufront/middleware"
	"github.com/princinho/menufront/models"
	"github.com/princinho/menufront/session"
	"github.com/princinho/menufront/utils"
	"github.com/princinho/menufront/validation"
)

const storeKey = "sessionStore"

// App carries what every handler needs to reach the backend on behalf of one visitor.
type App struct {
	BackendURL string
	HTTPClient *http.Client
	Logger     *zap.Logger
	Images     *utils.FileValidator
	Cookie     session.CookieOptions
}

// Store returns the cookie session of the request, creating it once so that a
// token set or cleared earlier in the request is seen by later reads.
func (a *App) Store(c *gin.Context) session.Store {
	if v, ok := c.Get(storeKey); ok {
		return v.(session.Store)
	}
	s := session.NewCookieStore(c, a.Cookie)
	c.Set(storeKey, s)
	return s
}

func (a *App) client(c *gin.Context) *api.Client {
	opts := []api.Option{api.WithLogger(a.Logger)}
	if a.HTTPClient != nil {
		opts = append(opts, api.WithHTTPClient(a.HTTPClient))
	}
	return api.New(a.BackendURL, a.Store(c), opts...)
}

func (a *App) loggedIn(c *gin.Context) bool {
	_, err := session.Active(c.Request.Context(), a.Store(c))
	return err == nil
}

// page builds the data every template expects, then adds the page's own keys.
func (a *App) page(c *gin.Context, title string, data gin.H) gin.H {
	h := gin.H{
		"Title":      title,
		"Path":       c.Request.URL.Path,
		"LoggedIn":   a.loggedIn(c),
		"Notice":     c.Query("notice"),
		"Error":      c.Query("error"),
		"Warnings":   []string(nil),
		"Validation": validation.Result{},
	}
	for k, v := range data {
		h[k] = v
	}
	return h
}

func listing(m *api.Menu, criteria filter.Criteria) gin.H {
	if m == nil {
		m = &api.Menu{Categories: []models.Category{}, Items: []models.Product{}}
	}
	return gin.H{
		"Criteria":   criteria,
		"Categories": m.Categories,
		"AllItems":   m.Items,
		"Items":      filter.Apply(m.Items, criteria),
		"Counts":     filter.CountByCategory(m.Items),
	}
}

func criteria(c *gin.Context) filter.Criteria {
	var cr filter.Criteria
	if err := c.ShouldBindQuery(&cr); err != nil {
		return filter.Criteria{}
	}
	return cr
}

// handleAPIError deals with the failures a page cannot render around: an auth
// failure sends the visitor to the login view, a cancelled request is dropped.
// The client has already cleared the session on a 401.
func (a *App) handleAPIError(c *gin.Context, err error) bool {
	switch {
	case api.IsAuth(err):
		redirect(c, middleware.LoginPath, "", api.Message(err))
		return true
	case errors.Is(err, context.Canceled):
		c.Abort()
		return true
	}
	a.Logger.Warn("backend call failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	return false
}

func redirect(c *gin.Context, path, notice, errMsg string) {
	q := url.Values{}
	if notice != "" {
		q.Set("notice", notice)
	}
	if errMsg != "" {
		q.Set("error", errMsg)
	}
	if len(q) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + q.Encode()
	}
	c.Redirect(http.StatusFound, path)
	c.Abort()
}
