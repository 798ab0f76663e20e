package domain

// HomeContent is the editable home-page content block stored upstream.
// The admin console reads and overwrites it as a unit.
type HomeContent struct {
	HeroTitle       string   `json:"heroTitle"`
	HeroSubtitle    string   `json:"heroSubtitle"`
	BannerImageURL  string   `json:"bannerImageUrl"`
	FeaturedSlugs   []string `json:"featuredSlugs"`
	WhatsAppNumber  string   `json:"whatsappNumber"`
	AnnouncementBar string   `json:"announcementBar,omitempty"`
}
