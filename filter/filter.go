package filter

import (
	"strings"

	"github.com/princinho/menufront/models"
	"golang.org/x/text/cases"
)

// AllCategories is the sentinel selection that disables the category filter.
const AllCategories = "all"

type Criteria struct {
	Category string `form:"category"`
	Search   string `form:"q"`
}

func (c Criteria) categoryActive() bool {
	return c.Category != "" && c.Category != AllCategories
}

// Matches reports whether p passes both the category and the text filter.
func (c Criteria) Matches(p models.Product) bool {
	if c.categoryActive() && p.Category != c.Category {
		return false
	}
	return matchesText(p, c.Search)
}

func matchesText(p models.Product, search string) bool {
	if search == "" {
		return true
	}
	return containsFold(search, p.Name, p.Description)
}

// containsFold reports whether any of fields holds search, ignoring case.
func containsFold(search string, fields ...string) bool {
	fold := cases.Fold()
	needle := fold.String(search)
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

// Apply returns the products matching c, in their original order. The input is not modified.
func Apply(products []models.Product, c Criteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// CountByCategory tallies products per category id, used for the filter bar badges.
func CountByCategory(products []models.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}

// Categories returns the categories whose name contains search, ignoring case.
// A blank search keeps every category.
func Categories(cats []models.Category, search string) []models.Category {
	search = strings.TrimSpace(search)
	out := make([]models.Category, 0, len(cats))
	for _, c := range cats {
		if search == "" || containsFold(search, c.Name) {
			out = append(out, c)
		}
	}
	return out
}
