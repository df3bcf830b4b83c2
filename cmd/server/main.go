package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mpancino/myAssetPlace-sub004/internal/auth"
	"github.com/mpancino/myAssetPlace-sub004/internal/cache"
	apihttp "github.com/mpancino/myAssetPlace-sub004/internal/http"
	"github.com/mpancino/myAssetPlace-sub004/internal/middleware"
	"github.com/mpancino/myAssetPlace-sub004/internal/service"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage/sqlite"
	"github.com/mpancino/myAssetPlace-sub004/pkg/logging"
)

const (
	defaultPort      = "8080"
	tokenDuration    = 24 * time.Hour
	rateLimit        = 30 // compute requests per client per minute
	shutdownTimeout  = 10 * time.Second
	readWriteTimeout = 15 * time.Second
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/wealth.db")
	staticPath := getEnv("STATIC_PATH", "../frontend/static")
	port := getEnv("PORT", defaultPort)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	// Projection cache: Redis when configured, in-process otherwise
	var projectionCache cache.Cache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisCache := cache.NewRedisCache(redisAddr)
		defer redisCache.Close()
		projectionCache = redisCache
		slog.Info("Projection cache using Redis", "addr", redisAddr)
	} else {
		projectionCache = cache.NewMemoryCache()
		slog.Info("Projection cache using in-process memory")
	}

	jwtManager := auth.NewJWTManager(jwtSecret, tokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)

	handlers := apihttp.Handlers{
		Auth:     apihttp.NewAuthHandler(service.NewAuthService(authenticator, jwtManager, slog.Default())),
		Assets:   apihttp.NewAssetHandler(service.NewAssetService(store)),
		Expenses: apihttp.NewExpenseHandler(service.NewExpenseService(store)),
		Projection: apihttp.NewProjectionHandler(
			service.NewProjectionService(store, projectionCache),
			service.NewDashboardService(store),
			service.NewLoanService(store),
		),
	}

	limiter := apihttp.NewRateLimiter(rateLimit, time.Minute)
	defer limiter.Stop()

	api := apihttp.NewRouter(handlers, jwtManager, limiter)

	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	mux.Handle("/metrics", api)
	mux.Handle("/healthz", api)

	// Serve the SPA for everything else
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))

		// For SPA-like behavior, serve index.html for unknown paths
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})

	// Add logging and CORS, then wrap with h2c for HTTP/2 without TLS
	logged := middleware.Logging(middleware.CORS(mux))
	handler := h2c.NewHandler(logged, &http2.Server{})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      handler,
		ReadTimeout:  readWriteTimeout,
		WriteTimeout: readWriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		return
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}

	slog.Info("Server exited")
}
