package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/models"
	"github.com/princinho/menufront/normalizer"
)

const (
	publicCategoriesPath = "/api/user/menuCategories"
	adminCategoriesPath  = "/api/admin/menuCategories"
)

func (c *Client) PublicCategories(ctx context.Context) ([]models.Category, error) {
	payload, err := c.do(ctx, request{method: http.MethodGet, path: publicCategoriesPath})
	if err != nil {
		return nil, err
	}
	return normalizer.Categories(payload), nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	payload, err := c.do(ctx, request{method: http.MethodGet, path: adminCategoriesPath, auth: true})
	if err != nil {
		return nil, err
	}
	return normalizer.Categories(payload), nil
}

func categoryBody(f dto.CategoryForm) map[string]string {
	return map[string]string{
		"name":        strings.TrimSpace(f.Name),
		"description": strings.TrimSpace(f.Description),
	}
}

func (c *Client) CreateCategory(ctx context.Context, f dto.CategoryForm) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   adminCategoriesPath,
		auth:   true,
		json:   categoryBody(f),
	})
	return err
}

// UpdateCategory posts with a _method override because the backend only reads PUT bodies that way.
func (c *Client) UpdateCategory(ctx context.Context, id string, f dto.CategoryForm) error {
	body := categoryBody(f)
	body["_method"] = http.MethodPut
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   adminCategoriesPath + "/" + url.PathEscape(id),
		auth:   true,
		json:   body,
	})
	return err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   adminCategoriesPath + "/" + url.PathEscape(id),
		auth:   true,
	})
	return err
}
