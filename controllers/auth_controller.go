package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/princinho/menufront/api"
	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/forms"
	"github.com/princinho/menufront/middleware"
	"github.com/princinho/menufront/validation"
)

func (a *App) renderLogin(c *gin.Context, status int, form *forms.Form[dto.LoginForm]) {
	values := form.Values
	values.Password = ""
	c.HTML(status, "login", a.page(c, "Log in", gin.H{
		"Form":       values,
		"Validation": form.Validation,
		"Error":      form.Error(),
	}))
}

func (a *App) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginForm
		if err := c.ShouldBind(&body); err != nil {
			a.Logger.Info("bad login form", zap.Error(err))
			c.HTML(http.StatusBadRequest, "login", a.page(c, "Log in", gin.H{
				"Form":  dto.LoginForm{},
				"Error": api.GenericMessage,
			}))
			return
		}

		client := a.client(c)
		form := forms.New(body)
		err := form.Submit(c.Request.Context(), validation.Login, func(ctx context.Context, f dto.LoginForm) error {
			return client.Login(ctx, f.Email, f.Password)
		})
		if !form.Succeeded() {
			status := http.StatusUnprocessableEntity
			if err != nil {
				a.Logger.Info("login failed", zap.String("email", body.Email), zap.Error(err))
				status = http.StatusUnauthorized
			}
			a.renderLogin(c, status, form)
			return
		}

		a.Logger.Info("admin logged in", zap.String("email", body.Email))
		redirect(c, middleware.LoginPath, "Welcome back", "")
	}
}

func (a *App) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.client(c).Logout(c.Request.Context()); err != nil {
			a.Logger.Warn("logout failed", zap.Error(err))
		}
		redirect(c, "/menu", "You are logged out", "")
	}
}
