package http

import (
	"github.com/casadometal/vitrine/internal/gateway/domain"
	"github.com/casadometal/vitrine/pkg/shopsdk"
)

// The /api surface speaks shopsdk wire types so the SDK and the handlers can
// never drift apart. These conversions are the only bridge from the domain.

func viewerToUser(v domain.Viewer) shopsdk.User {
	return shopsdk.User{
		ID:       v.ID,
		Name:     v.Name,
		Email:    v.Email,
		Username: v.Username,
	}
}

func productToWire(p domain.Product) shopsdk.Product {
	return shopsdk.Product{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		ModelURL:    p.ModelURL,
		Categories:  p.Categories,
		InStock:     p.InStock,
	}
}

func productsToWire(products []domain.Product) []shopsdk.Product {
	out := make([]shopsdk.Product, 0, len(products))
	for _, p := range products {
		out = append(out, productToWire(p))
	}
	return out
}

func categoriesToWire(categories []domain.Category) []shopsdk.Category {
	out := make([]shopsdk.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, shopsdk.Category{ID: c.ID, Slug: c.Slug, Name: c.Name, Count: c.Count})
	}
	return out
}

func contentToWire(c domain.HomeContent) shopsdk.HomeContent {
	return shopsdk.HomeContent{
		HeroTitle:       c.HeroTitle,
		HeroSubtitle:    c.HeroSubtitle,
		BannerImageURL:  c.BannerImageURL,
		FeaturedSlugs:   c.FeaturedSlugs,
		WhatsAppNumber:  c.WhatsAppNumber,
		AnnouncementBar: c.AnnouncementBar,
	}
}

func contentFromWire(c shopsdk.HomeContent) domain.HomeContent {
	return domain.HomeContent{
		HeroTitle:       c.HeroTitle,
		HeroSubtitle:    c.HeroSubtitle,
		BannerImageURL:  c.BannerImageURL,
		FeaturedSlugs:   c.FeaturedSlugs,
		WhatsAppNumber:  c.WhatsAppNumber,
		AnnouncementBar: c.AnnouncementBar,
	}
}
