// Package normalizer maps the backend's inconsistent response envelopes onto
// the fixed category and product records. It never fails: absent or malformed
// fields fall back to defaults.
package normalizer

import (
	"strconv"

	"github.com/princinho/menufront/models"
)

var (
	namePaths = []string{
		"name",
		"title",
		"attributes.name",
		"attributes.title",
		"data.attributes.name",
		"data.name",
		"data.title",
		"item.name",
	}
	descriptionPaths = []string{"description", "attributes.description"}
	idPaths          = []string{"id", "_id"}

	productIDPaths    = []string{"id", "_id", "attributes.id"}
	pricePaths        = []string{"price", "attributes.price"}
	imagePaths        = []string{"image", "image_url", "attributes.image_url", "attributes.image"}
	typePaths         = []string{"type", "attributes.type"}
	availabilityPaths = []string{"is_available", "attributes.is_available"}
	categoryIDPaths   = []string{
		"category",
		"category_id",
		"attributes.category_id",
		"relationship.menuCategory.id",
		"relationships.menuCategory.data.id",
		"menuCategory.id",
	}

	tokenPaths   = []string{"data.token", "token", "access_token", "data.access_token", "accessToken"}
	messagePaths = []string{"message", "error", "errors.0.detail", "errors.0.message"}
)

// FallbackID is the id given to the element at position i when the backend sent none.
func FallbackID(i int) string {
	return "local-" + strconv.Itoa(i)
}

func Category(v any, index int) models.Category {
	id, ok := firstString(v, idPaths...)
	if !ok {
		id = FallbackID(index)
	}
	name, ok := firstString(v, namePaths...)
	if !ok {
		name = models.DefaultCategoryName
	}
	desc, _ := firstString(v, descriptionPaths...)
	return models.Category{ID: id, Name: name, Description: desc}
}

func Categories(payload any) []models.Category {
	elems := Elements(payload)
	out := make([]models.Category, 0, len(elems))
	for i, el := range elems {
		out = append(out, Category(el, i))
	}
	return out
}

func Product(v any, index int) models.Product {
	id, ok := firstString(v, productIDPaths...)
	if !ok {
		id = FallbackID(index)
	}
	name, ok := firstString(v, namePaths...)
	if !ok {
		name = models.DefaultProductName
	}
	desc, _ := firstString(v, descriptionPaths...)

	price, _ := firstNumber(v, pricePaths...)
	if price < 0 {
		price = 0
	}

	ptype := models.ProductTypeFood
	if raw, ok := firstString(v, typePaths...); ok {
		if t, ok := models.ParseProductType(raw); ok {
			ptype = t
		}
	}

	image, _ := firstString(v, imagePaths...)
	category, _ := firstString(v, categoryIDPaths...)
	available, _ := firstBool(v, availabilityPaths...)

	return models.Product{
		ID:          id,
		Name:        name,
		Description: desc,
		Price:       price,
		Image:       image,
		Type:        ptype,
		Category:    category,
		IsAvailable: available,
	}
}

func Products(payload any) []models.Product {
	elems := Elements(payload)
	out := make([]models.Product, 0, len(elems))
	for i, el := range elems {
		out = append(out, Product(el, i))
	}
	return out
}

func DecodeCategories(body []byte) []models.Category {
	return Categories(Decode(body))
}

func DecodeProducts(body []byte) []models.Product {
	return Products(Decode(body))
}

// Token extracts the bearer token from a login response.
func Token(payload any) (string, bool) {
	return firstString(payload, tokenPaths...)
}

// ErrorMessage extracts a human readable message from an error response.
func ErrorMessage(payload any) (string, bool) {
	return firstString(payload, messagePaths...)
}
