package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/models"
	"github.com/princinho/menufront/normalizer"
)

const (
	publicItemsPath = "/api/user/items"
	adminItemsPath  = "/api/admin/items"
)

// ItemInput is a validated product ready to be sent.
type ItemInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  string
	Type        models.ProductType
	ImageURL    string
	Image       *dto.Upload
}

// NewItemInput converts a product form that has already passed validation.
func NewItemInput(f dto.ProductForm) ItemInput {
	price, _ := f.PriceValue()
	ptype, ok := models.ParseProductType(f.Type)
	if !ok {
		ptype = models.ProductTypeFood
	}
	return ItemInput{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Price:       price,
		CategoryID:  strings.TrimSpace(f.Category),
		Type:        ptype,
		ImageURL:    strings.TrimSpace(f.ImageURL),
		Image:       f.Image,
	}
}

// categoryIDValue sends numeric ids as numbers, anything else as given.
func categoryIDValue(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

// request builds the JSON body, or the multipart body when a file is attached.
// Both carry the same fields.
func (in ItemInput) request(method, path string, override string) request {
	price := strconv.FormatFloat(in.Price, 'f', -1, 64)
	r := request{method: method, path: path, auth: true}

	if in.Image != nil {
		r.file = in.Image
		r.fields = []field{
			{"name", in.Name},
			{"description", in.Description},
			{"price", price},
			{"category_id", in.CategoryID},
			{"type", string(in.Type)},
		}
		if override != "" {
			r.fields = append(r.fields, field{"_method", override})
		}
		return r
	}

	body := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       price,
		"category_id": categoryIDValue(in.CategoryID),
		"type":        string(in.Type),
		"image_url":   in.ImageURL,
	}
	if override != "" {
		body["_method"] = override
	}
	r.json = body
	return r
}

func (c *Client) PublicItems(ctx context.Context) ([]models.Product, error) {
	payload, err := c.do(ctx, request{method: http.MethodGet, path: publicItemsPath})
	if err != nil {
		return nil, err
	}
	return normalizer.Products(payload), nil
}

func (c *Client) Items(ctx context.Context) ([]models.Product, error) {
	payload, err := c.do(ctx, request{method: http.MethodGet, path: adminItemsPath, auth: true})
	if err != nil {
		return nil, err
	}
	return normalizer.Products(payload), nil
}

func (c *Client) CreateItem(ctx context.Context, in ItemInput) error {
	_, err := c.do(ctx, in.request(http.MethodPost, adminItemsPath, ""))
	return err
}

// UpdateItem posts with a _method override so multipart updates reach the backend.
func (c *Client) UpdateItem(ctx context.Context, id string, in ItemInput) error {
	_, err := c.do(ctx, in.request(http.MethodPost, adminItemsPath+"/"+url.PathEscape(id), http.MethodPut))
	return err
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   adminItemsPath + "/" + url.PathEscape(id),
		auth:   true,
	})
	return err
}

// Item finds one item in the admin list; the backend has no single item endpoint.
func (c *Client) Item(ctx context.Context, id string) (models.Product, bool, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return models.Product{}, false, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return models.Product{}, false, nil
}
