package controllers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/princinho/menufront/middleware"
)

// Router wires every page of the frontend. Only the JSON menu is open to other origins.
func Router(a *App, tmpl *template.Template, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(a.Logger))
	r.Use(middleware.Recovery(a.Logger))
	r.SetHTMLTemplate(tmpl)

	allowed := map[string]bool{}
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	a.Logger.Debug("allowed origins", zap.Strings("origins", allowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/", Home())
	r.GET("/menu", a.GetMenu())
	r.GET(middleware.LoginPath, a.ManageProducts())
	r.POST("/login", a.Login())
	r.POST("/logout", a.Logout())

	public := r.Group("/api")
	public.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	{
		public.GET("/menu", a.GetMenuJSON())
	}

	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(a.Store))
	{
		admin.GET("/add-product", a.AddProductPage())
		admin.POST("/add-product", a.CreateProduct())
		admin.GET("/products/:id/edit", a.EditProductPage())
		admin.POST("/products/:id/edit", a.UpdateProduct())
		admin.POST("/products/:id/delete", a.DeleteProduct())

		admin.POST("/categories", a.AddCategory())
		admin.POST("/categories/:id", a.UpdateCategory())
		admin.POST("/categories/:id/delete", a.DeleteCategory())
	}

	r.NoRoute(a.NotFound())
	return r
}
