package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princinho/menufront/api"
	"github.com/princinho/menufront/filter"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/menu")
	}
}

// GetMenu renders the public menu. A backend failure still renders the page,
// with the message and an empty list.
func (a *App) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		cr := criteria(c)
		menu, err := a.client(c).LoadMenu(c.Request.Context())
		if err != nil {
			if a.handleAPIError(c, err) {
				return
			}
			data := listing(nil, cr)
			data["Error"] = api.Message(err)
			c.HTML(http.StatusBadGateway, "menu", a.page(c, "Menu", data))
			return
		}
		c.HTML(http.StatusOK, "menu", a.page(c, "Menu", listing(menu, cr)))
	}
}

// GetMenuJSON serves the normalized public menu, filtered like the HTML page.
func (a *App) GetMenuJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		cr := criteria(c)
		menu, err := a.client(c).LoadMenu(c.Request.Context())
		if err != nil {
			if a.handleAPIError(c, err) {
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"categories": menu.Categories,
			"items":      filter.Apply(menu.Items, cr),
		})
	}
}

func (a *App) NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not_found", a.page(c, "Not found", nil))
	}
}
