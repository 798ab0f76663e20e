package domain

import "strings"

// Product is a WooCommerce catalog entry as this storefront needs it.
// Price is in the store currency; ModelURL points at the GLB asset used by
// the 3D viewer on the product detail page.
type Product struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ModelURL    string   `json:"modelUrl,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	InStock     bool     `json:"inStock"`
}

// Category is a WooCommerce product category.
type Category struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProductFilter narrows a catalog listing. Zero values mean "no constraint";
// MaxPrice <= 0 disables the upper bound.
type ProductFilter struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
}

// Matches reports whether p passes the filter. Search is a case-insensitive
// substring match over name and description, per the storefront's
// intentionally simple search.
func (f ProductFilter) Matches(p Product) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if f.Category != "" && !hasCategory(p, f.Category) {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}

func hasCategory(p Product, slug string) bool {
	for _, c := range p.Categories {
		if strings.EqualFold(c, slug) {
			return true
		}
	}
	return false
}
