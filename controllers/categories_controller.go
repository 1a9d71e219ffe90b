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

// AddCategory keeps the typed values on the manage page when the submission fails.
func (a *App) AddCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CategoryForm
		if err := c.ShouldBind(&body); err != nil {
			a.Logger.Info("bad category form", zap.Error(err))
			redirect(c, middleware.LoginPath, "", api.GenericMessage)
			return
		}

		client := a.client(c)
		form := forms.New(body)
		err := form.Submit(c.Request.Context(), validation.Category, client.CreateCategory)
		if err != nil && a.handleAPIError(c, err) {
			return
		}
		if !form.Succeeded() {
			status := http.StatusUnprocessableEntity
			if err != nil {
				status = http.StatusBadGateway
			}
			a.renderManage(c, status, gin.H{
				"CategoryForm":       form.Values,
				"CategoryValidation": form.Validation,
				"Error":              form.Error(),
			})
			return
		}
		a.Logger.Info("category added", zap.String("name", body.Name))
		redirect(c, middleware.LoginPath, "Category added", "")
	}
}

func (a *App) UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var body dto.CategoryForm
		if err := c.ShouldBind(&body); err != nil {
			a.Logger.Info("bad category form", zap.Error(err))
			redirect(c, middleware.LoginPath, "", api.GenericMessage)
			return
		}

		client := a.client(c)
		form := forms.New(body)
		err := form.Submit(c.Request.Context(), validation.Category, func(ctx context.Context, f dto.CategoryForm) error {
			return client.UpdateCategory(ctx, id, f)
		})
		if err != nil && a.handleAPIError(c, err) {
			return
		}
		if !form.Succeeded() {
			msg := form.Error()
			if !form.Validation.OK() {
				msg = form.Validation.Error()
			}
			redirect(c, middleware.LoginPath, "", msg)
			return
		}
		redirect(c, middleware.LoginPath, "Category saved", "")
	}
}

func (a *App) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.client(c).DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
			if a.handleAPIError(c, err) {
				return
			}
			redirect(c, middleware.LoginPath, "", api.Message(err))
			return
		}
		redirect(c, middleware.LoginPath, "Category deleted", "")
	}
}
