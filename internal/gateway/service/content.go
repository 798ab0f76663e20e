package service

import (
	"context"
	"errors"
	"strings"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

var ErrInvalidContent = errors.New("invalid_content")

// ContentUpstream is the slice of the upstream client the content editor needs.
type ContentUpstream interface {
	HomeContent(ctx context.Context) (domain.HomeContent, error)
	UpdateHomeContent(ctx context.Context, accessToken string, content domain.HomeContent) error
}

// ContentService reads and writes the editable home-page block.
type ContentService struct {
	Upstream ContentUpstream

	// FallbackWhatsApp fills the contact number when the upstream block
	// leaves it empty. Comes from configuration.
	FallbackWhatsApp string
}

// HomeContent reads the current home-page block.
func (s *ContentService) HomeContent(ctx context.Context) (domain.HomeContent, error) {
	content, err := s.Upstream.HomeContent(ctx)
	if err != nil {
		return domain.HomeContent{}, err
	}
	if content.WhatsAppNumber == "" {
		content.WhatsAppNumber = s.FallbackWhatsApp
	}
	return content, nil
}

// UpdateHomeContent overwrites the home-page block on behalf of the
// authenticated admin. The upstream enforces edit permission against the
// forwarded access token.
func (s *ContentService) UpdateHomeContent(ctx context.Context, accessToken string, content domain.HomeContent) error {
	if strings.TrimSpace(content.HeroTitle) == "" {
		return ErrInvalidContent
	}
	return s.Upstream.UpdateHomeContent(ctx, accessToken, content)
}
