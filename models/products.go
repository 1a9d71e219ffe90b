package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultProductName is shown when the backend payload carries no usable name.
const DefaultProductName = "Unnamed item"

type ProductType string

const (
	ProductTypeFood ProductType = "food"
	ProductTypeHot  ProductType = "hot"
	ProductTypeCold ProductType = "cold"
)

var ProductTypes = []ProductType{ProductTypeFood, ProductTypeHot, ProductTypeCold}

// labels the backend has been seen to use for each type, besides the type itself
var productTypeLabels = map[string]ProductType{
	"food": ProductTypeFood,
	"أكل":  ProductTypeFood,
	"hot":  ProductTypeHot,
	"ساخن": ProductTypeHot,
	"cold": ProductTypeCold,
	"بارد": ProductTypeCold,
}

// ParseProductType maps a backend or form label to a ProductType.
func ParseProductType(v string) (ProductType, bool) {
	t, ok := productTypeLabels[cases.Fold().String(strings.TrimSpace(v))]
	return t, ok
}

func (t ProductType) Label() string {
	switch t {
	case ProductTypeHot:
		return "Hot"
	case ProductTypeCold:
		return "Cold"
	default:
		return "Food"
	}
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Image       string      `json:"image,omitempty"`
	Type        ProductType `json:"type"`
	Category    string      `json:"category"`
	IsAvailable bool        `json:"is_available"`
}

// DisplayPrice renders the price with two decimals.
func (p Product) DisplayPrice() string {
	return fmt.Sprintf("%.2f", p.Price)
}
