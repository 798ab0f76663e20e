package upstream

import (
	"context"
	"strconv"
	"strings"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

const productsQuery = `
query Products($first: Int!) {
  products(first: $first) {
    nodes {
      id
      slug
      name
      description(format: RAW)
      price(format: RAW)
      stockStatus
      image { sourceUrl }
      productCategories { nodes { slug } }
      metaData(key: "model_url") { value }
    }
  }
}`

const productBySlugQuery = `
query ProductBySlug($slug: ID!) {
  product(id: $slug, idType: SLUG) {
    id
    slug
    name
    description(format: RAW)
    price(format: RAW)
    stockStatus
    image { sourceUrl }
    productCategories { nodes { slug } }
    metaData(key: "model_url") { value }
  }
}`

const categoriesQuery = `
query Categories($first: Int!) {
  productCategories(first: $first) {
    nodes {
      id
      slug
      name
      count
    }
  }
}`

// catalogPageSize bounds how much of the catalog is pulled per query. The
// store carries a few hundred products at most.
const catalogPageSize = 200

type productNode struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	StockStatus string `json:"stockStatus"`
	Image       struct {
		SourceURL string `json:"sourceUrl"`
	} `json:"image"`
	ProductCategories struct {
		Nodes []struct {
			Slug string `json:"slug"`
		} `json:"nodes"`
	} `json:"productCategories"`
	MetaData []struct {
		Value string `json:"value"`
	} `json:"metaData"`
}

func (n productNode) toDomain() domain.Product {
	p := domain.Product{
		ID:          n.ID,
		Slug:        n.Slug,
		Name:        n.Name,
		Description: n.Description,
		Price:       parsePrice(n.Price),
		ImageURL:    n.Image.SourceURL,
		InStock:     strings.EqualFold(n.StockStatus, "IN_STOCK"),
	}
	for _, c := range n.ProductCategories.Nodes {
		p.Categories = append(p.Categories, c.Slug)
	}
	if len(n.MetaData) > 0 {
		p.ModelURL = n.MetaData[0].Value
	}
	return p
}

// parsePrice handles WooGraphQL raw prices ("1250.00") and tolerates the
// localized form ("1.250,00") some store configurations return.
func parsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Products fetches the catalog. Retried with backoff on transport failures.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var resp struct {
		Products struct {
			Nodes []productNode `json:"nodes"`
		} `json:"products"`
	}

	err := c.doWithRetry(ctx, productsQuery, map[string]any{"first": catalogPageSize}, "", &resp)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp.Products.Nodes))
	for _, n := range resp.Products.Nodes {
		products = append(products, n.toDomain())
	}
	return products, nil
}

// ProductBySlug fetches one product, or nil when the slug is unknown.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var resp struct {
		Product *productNode `json:"product"`
	}

	err := c.doWithRetry(ctx, productBySlugQuery, map[string]any{"slug": slug}, "", &resp)
	if err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, nil
	}

	p := resp.Product.toDomain()
	return &p, nil
}

// Categories fetches all product categories.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var resp struct {
		ProductCategories struct {
			Nodes []domain.Category `json:"nodes"`
		} `json:"productCategories"`
	}

	err := c.doWithRetry(ctx, categoriesQuery, map[string]any{"first": catalogPageSize}, "", &resp)
	if err != nil {
		return nil, err
	}
	return resp.ProductCategories.Nodes, nil
}
