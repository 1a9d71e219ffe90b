// Package views holds the embedded HTML templates of the frontend.
package views

import (
	"embed"
	"html/template"

	"github.com/princinho/menufront/models"
)

//go:embed templates/*.gohtml
var files embed.FS

var funcs = template.FuncMap{
	"typeLabel": func(t models.ProductType) string { return t.Label() },
	"selected": func(a, b string) bool { return a == b },
	"categoryName": func(cats []models.Category, id string) string {
		for _, c := range cats {
			if c.ID == id {
				return c.Name
			}
		}
		return "Uncategorized"
	},
}

// Templates parses every page template into one set. Pages share the
// "header" and "footer" blocks from layout.gohtml.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.gohtml")
}

// ProductTypes is the list offered in the product form.
func ProductTypes() []models.ProductType {
	return models.ProductTypes
}
