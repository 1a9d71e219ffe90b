package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/princinho/menufront/api"
	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/filter"
	"github.com/princinho/menufront/forms"
	"github.com/princinho/menufront/middleware"
	"github.com/princinho/menufront/models"
	"github.com/princinho/menufront/validation"
	"github.com/princinho/menufront/views"
)

// ManageProducts is the login view for visitors and the admin list for a session.
func (a *App) ManageProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.loggedIn(c) {
			a.renderLogin(c, http.StatusOK, forms.New(dto.LoginForm{}))
			return
		}
		a.renderManage(c, http.StatusOK, nil)
	}
}

func (a *App) renderManage(c *gin.Context, status int, extra gin.H) {
	cr := criteria(c)
	menu, err := a.client(c).LoadAdmin(c.Request.Context())
	if err != nil && a.handleAPIError(c, err) {
		return
	}
	data := listing(menu, cr)
	if err != nil {
		data["Error"] = api.Message(err)
		status = http.StatusBadGateway
	}

	cq := strings.TrimSpace(c.Query("cq"))
	cats, _ := data["Categories"].([]models.Category)
	data["CategorySearch"] = cq
	data["MatchingCategories"] = filter.Categories(cats, cq)
	data["CategoryForm"] = dto.CategoryForm{}
	data["CategoryValidation"] = validation.Result{}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "manage", a.page(c, "Manage products", data))
}

// renderProductForm shows the add or edit form. cats is fetched when nil.
func (a *App) renderProductForm(c *gin.Context, status int, id string, form *forms.Form[dto.ProductForm], cats []models.Category) {
	errMsg := form.Error()
	if cats == nil {
		var err error
		cats, err = a.client(c).Categories(c.Request.Context())
		if err != nil {
			if a.handleAPIError(c, err) {
				return
			}
			cats = []models.Category{}
			if errMsg == "" {
				errMsg = api.Message(err)
			}
		}
	}

	title, action := "Add product", "/add-product"
	if id != "" {
		title, action = "Edit product", "/products/"+url.PathEscape(id)+"/edit"
	}
	values := form.Values
	values.Image = nil
	c.HTML(status, "product_form", a.page(c, title, gin.H{
		"ProductID":   id,
		"Action":      action,
		"Form":        values,
		"Validation":  form.Validation,
		"Warnings":    form.Validation.Warnings,
		"Error":       errMsg,
		"Categories":  cats,
		"Types":       views.ProductTypes(),
		"MaxUploadMB": a.Images.MaxSizeMB(),
	}))
}

func (a *App) AddProductPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		form := forms.New(dto.ProductForm{Type: string(models.ProductTypeFood)})
		a.renderProductForm(c, http.StatusOK, "", form, nil)
	}
}

func (a *App) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.saveProduct(c, "")
	}
}

func (a *App) EditProductPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		menu, err := a.client(c).LoadAdmin(c.Request.Context())
		if err != nil {
			if a.handleAPIError(c, err) {
				return
			}
			redirect(c, middleware.LoginPath, "", api.Message(err))
			return
		}

		for _, p := range menu.Items {
			if p.ID != id {
				continue
			}
			form := forms.New(dto.ProductForm{
				Name:         p.Name,
				Description:  p.Description,
				Price:        strconv.FormatFloat(p.Price, 'f', -1, 64),
				Category:     p.Category,
				Type:         string(p.Type),
				ImageURL:     p.Image,
				CurrentImage: p.Image,
			})
			a.renderProductForm(c, http.StatusOK, id, form, menu.Categories)
			return
		}
		a.NotFound()(c)
	}
}

func (a *App) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.saveProduct(c, c.Param("id"))
	}
}

// saveProduct creates the product when id is empty and updates it otherwise.
func (a *App) saveProduct(c *gin.Context, id string) {
	var body dto.ProductForm
	if err := c.ShouldBind(&body); err != nil {
		a.Logger.Info("bad product form", zap.Error(err))
		form := forms.New(dto.ProductForm{})
		form.Message = api.GenericMessage
		a.renderProductForm(c, http.StatusBadRequest, id, form, nil)
		return
	}
	if fh, err := c.FormFile("image"); err == nil {
		body.Image = dto.UploadFromHeader(fh)
	}

	name := strings.TrimSpace(body.Name)
	client := a.client(c)
	form := forms.New(body)
	err := form.Submit(c.Request.Context(), func(f dto.ProductForm) validation.Result {
		return validation.Product(f, a.Images)
	}, func(ctx context.Context, f dto.ProductForm) error {
		in := api.NewItemInput(f)
		if id == "" {
			return client.CreateItem(ctx, in)
		}
		return client.UpdateItem(ctx, id, in)
	})
	if err != nil && a.handleAPIError(c, err) {
		return
	}
	if !form.Succeeded() {
		status := http.StatusUnprocessableEntity
		if err != nil {
			status = http.StatusBadGateway
		}
		a.renderProductForm(c, status, id, form, nil)
		return
	}

	notice := fmt.Sprintf("%q added", name)
	if id != "" {
		notice = fmt.Sprintf("%q saved", name)
	}
	if w := form.Validation.Warnings; len(w) > 0 {
		notice += ". " + strings.Join(w, " ")
	}
	a.Logger.Info("product saved", zap.String("id", id), zap.String("name", name))
	redirect(c, middleware.LoginPath, notice, "")
}

func (a *App) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		back := middleware.LoginPath
		if cat := c.PostForm("category_filter"); cat != "" {
			back += "?category=" + url.QueryEscape(cat)
		}

		if err := a.client(c).DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
			if a.handleAPIError(c, err) {
				return
			}
			redirect(c, back, "", api.Message(err))
			return
		}
		redirect(c, back, "Product deleted", "")
	}
}
