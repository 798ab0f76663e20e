package shopsdk

// User is the authenticated shopper or admin as reported by GET /api/auth/me
// and POST /api/auth/login.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Product is one catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	ModelURL    string   `json:"modelUrl,omitempty"`
	Categories  []string `json:"categories"`
	InStock     bool     `json:"inStock"`
}

// Category is one product category.
type Category struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HomeContent is the editable home-page block.
type HomeContent struct {
	HeroTitle       string   `json:"heroTitle"`
	HeroSubtitle    string   `json:"heroSubtitle"`
	BannerImageURL  string   `json:"bannerImageUrl"`
	FeaturedSlugs   []string `json:"featuredSlugs"`
	WhatsAppNumber  string   `json:"whatsappNumber"`
	AnnouncementBar string   `json:"announcementBar"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned from POST /api/auth/login. The tokens themselves
// travel in httpOnly cookies, never in the body.
type LoginResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

// RefreshResponse is returned from POST /api/auth/refresh.
type RefreshResponse struct {
	Success bool `json:"success"`
}

// LogoutResponse is returned from POST /api/auth/logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// ViewerResponse is returned from GET /api/auth/me. User is null when the
// caller is not authenticated.
type ViewerResponse struct {
	User *User `json:"user"`
}

// ProductsResponse is returned from GET /api/products.
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// ProductResponse is returned from GET /api/products/{slug}.
type ProductResponse struct {
	Product Product `json:"product"`
}

// CategoriesResponse is returned from GET /api/categories.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// HomeContentResponse is returned from GET /api/admin/home and accepted by
// PUT /api/admin/home.
type HomeContentResponse struct {
	Content HomeContent `json:"content"`
}

// HealthResponse is returned from the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the gateway's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Upstream string `json:"upstream"`
}
