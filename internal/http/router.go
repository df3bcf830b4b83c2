package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mpancino/myAssetPlace-sub004/internal/auth"
	"github.com/mpancino/myAssetPlace-sub004/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Assets     *AssetHandler
	Expenses   *ExpenseHandler
	Projection *ProjectionHandler
}

// NewRouter assembles the API mux. Every /api/v1 route except auth requires
// a valid JWT; the projection and schedule endpoints additionally pass
// through the rate limiter since they trigger computation.
func NewRouter(h Handlers, jwtManager *auth.JWTManager, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mount := func(pattern string, route string, handler http.HandlerFunc, protected, limited bool) {
		var wrapped http.Handler = handler
		if limited {
			wrapped = RateLimitMiddleware(limiter, wrapped)
		}
		if protected {
			wrapped = middleware.RequireAuth(jwtManager, wrapped)
		}
		mux.Handle(pattern, middleware.Metrics(route, wrapped))
	}

	mount("POST /api/v1/auth/register", "/api/v1/auth/register", h.Auth.Register, false, false)
	mount("POST /api/v1/auth/login", "/api/v1/auth/login", h.Auth.Login, false, false)

	mount("POST /api/v1/assets", "/api/v1/assets", h.Assets.Create, true, false)
	mount("GET /api/v1/assets", "/api/v1/assets", h.Assets.List, true, false)
	mount("GET /api/v1/assets/{id}", "/api/v1/assets/{id}", h.Assets.Get, true, false)
	mount("PUT /api/v1/assets/{id}", "/api/v1/assets/{id}", h.Assets.Update, true, false)
	mount("DELETE /api/v1/assets/{id}", "/api/v1/assets/{id}", h.Assets.Delete, true, false)
	mount("PUT /api/v1/assets/{id}/loan", "/api/v1/assets/{id}/loan", h.Assets.AttachLoan, true, false)
	mount("DELETE /api/v1/assets/{id}/loan", "/api/v1/assets/{id}/loan", h.Assets.DetachLoan, true, false)

	mount("POST /api/v1/expenses", "/api/v1/expenses", h.Expenses.Create, true, false)
	mount("GET /api/v1/expenses", "/api/v1/expenses", h.Expenses.List, true, false)
	mount("DELETE /api/v1/expenses/{id}", "/api/v1/expenses/{id}", h.Expenses.Delete, true, false)

	mount("GET /api/v1/loans/{assetId}/schedule", "/api/v1/loans/{assetId}/schedule", h.Projection.Schedule, true, true)
	mount("GET /api/v1/loans/{assetId}/summary", "/api/v1/loans/{assetId}/summary", h.Projection.Summary, true, true)
	mount("GET /api/v1/projection", "/api/v1/projection", h.Projection.Project, true, true)
	mount("GET /api/v1/dashboard", "/api/v1/dashboard", h.Projection.Dashboard, true, false)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
