package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/menufront/session"
)

// LoginPath is where the login form lives.
const LoginPath = "/manage-products"

// StoreFunc builds the session store of one request.
type StoreFunc func(c *gin.Context) session.Store

// AuthMiddleware sends visitors without a session to the login form before
// any backend call is made.
func AuthMiddleware(store StoreFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := session.Active(c.Request.Context(), store(c)); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
