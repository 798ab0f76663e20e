package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/internal/gateway/store"
	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/slogx"

	_ "github.com/casadometal/vitrine/api/gateway" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	upstream *upstream.Client

	AuthService    *service.AuthService
	CatalogService *service.CatalogService
	ContentService *service.ContentService

	BasicAuth     httpx.BasicAuthCredentials
	SecureCookies bool
}

func NewRouter(
	buildVersion string,
	st store.Store,
	up *upstream.Client,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		upstream:     up,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	guard := &Guard{
		AuthService:   r.AuthService,
		BasicAuth:     r.BasicAuth,
		SecureCookies: r.SecureCookies,
	}
	r.middlewares = append(r.middlewares, guard.Middleware())

	r.registerAuth()
	r.registerCatalog()
	r.registerAdmin()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain: request logging first, then the route guard.
//
//	@title			Vitrine Storefront Gateway API
//	@version		0.1.0
//	@description	HTTP gateway for the Casa do Metal storefront. Proxies auth, catalog and content
//	@description	operations to a headless WordPress/WooCommerce GraphQL backend and manages the
//	@description	browser's cookie session.
//
//	@contact.name	Casa do Metal
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{AuthService: r.AuthService, SecureCookies: r.SecureCookies}

	// POST /api/auth/login - strict limit keyed by IP plus the username in
	// the JSON body, so one address cannot spray one account.
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	refresh := &RefreshHandler{AuthService: r.AuthService, SecureCookies: r.SecureCookies}

	// POST /api/auth/refresh - moderate limit; the proactive client timer
	// calls this every few minutes per tab.
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(refresh,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	logout := &LogoutHandler{AuthService: r.AuthService, SecureCookies: r.SecureCookies}
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(logout,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	viewer := &ViewerHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(viewer,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCatalog() {
	products := &ProductsHandler{CatalogService: r.CatalogService}
	categories := &CategoriesHandler{CatalogService: r.CatalogService}

	r.Mux.Handle("GET /api/products",
		httpx.Chain(http.HandlerFunc(products.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/products/{slug}",
		httpx.Chain(http.HandlerFunc(products.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/categories",
		httpx.Chain(categories,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	home := &HomeContentHandler{ContentService: r.ContentService}
	products := &AdminProductsHandler{CatalogService: r.CatalogService}

	// The route guard has already rejected unauthenticated callers before
	// these handlers run.
	r.Mux.Handle("GET /api/admin/home",
		httpx.Chain(http.HandlerFunc(home.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /api/admin/home",
		httpx.Chain(http.HandlerFunc(home.HandlePut),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/admin/products",
		httpx.Chain(products,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPages() {
	r.Mux.Handle("GET /admin/login", LoginPageHandler())
	r.Mux.Handle("GET /admin", AdminPageHandler())
	r.Mux.Handle("GET /admin/", AdminPageHandler())
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.upstream))
}
