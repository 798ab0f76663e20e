package upstream

import (
	"context"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

// The home-page content block lives upstream behind a small custom plugin
// exposing homeContent/updateHomeContent.

const homeContentQuery = `
query HomeContent {
  homeContent {
    heroTitle
    heroSubtitle
    bannerImageUrl
    featuredSlugs
    whatsappNumber
    announcementBar
  }
}`

const updateHomeContentMutation = `
mutation UpdateHomeContent($input: UpdateHomeContentInput!) {
  updateHomeContent(input: $input) {
    homeContent {
      heroTitle
    }
  }
}`

// HomeContent reads the editable home-page block.
func (c *Client) HomeContent(ctx context.Context) (domain.HomeContent, error) {
	var resp struct {
		HomeContent domain.HomeContent `json:"homeContent"`
	}

	if err := c.doWithRetry(ctx, homeContentQuery, nil, "", &resp); err != nil {
		return domain.HomeContent{}, err
	}
	return resp.HomeContent, nil
}

// UpdateHomeContent overwrites the home-page block. The caller's access
// token is forwarded; the upstream enforces edit permission. Mutations are
// not retried.
func (c *Client) UpdateHomeContent(ctx context.Context, accessToken string, content domain.HomeContent) error {
	input := map[string]any{
		"heroTitle":       content.HeroTitle,
		"heroSubtitle":    content.HeroSubtitle,
		"bannerImageUrl":  content.BannerImageURL,
		"featuredSlugs":   content.FeaturedSlugs,
		"whatsappNumber":  content.WhatsAppNumber,
		"announcementBar": content.AnnouncementBar,
	}

	return c.do(ctx, updateHomeContentMutation, map[string]any{"input": input}, accessToken, nil)
}
