package main

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"hrtoolbox/internal/config"
	"hrtoolbox/internal/handlers"
	"hrtoolbox/internal/naming"
	"hrtoolbox/internal/services"
)

//go:embed all:templates
var templateFS embed.FS

//go:embed all:assets
var assetsFS embed.FS

func main() {
	defer initLogger(os.Stderr).Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Initialize the Toolbox Service, with AI naming when a key is configured
	opts := []services.Option{
		services.WithSessionTTL(cfg.SessionTTL),
		services.WithNamingTimeout(cfg.NamingTimeout),
	}
	if cfg.NamingEnabled() {
		namer, err := naming.NewGeminiNamer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.NamingLanguage)
		if err != nil {
			logger.Fatalf("Failed to create team namer: %v", err)
		}
		logger.Infof("AI team naming enabled using %s", namer.Name())
		opts = append(opts, services.WithNamer(namer))
	} else {
		logger.Info("GEMINI_API_KEY not set, AI team naming disabled")
	}
	toolboxService := services.NewToolboxService(opts...)

	// 2. Load HTML templates from the embedded filesystem.
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		logger.Fatalf("Failed to parse templates: %v", err)
	}

	// 3. Initialize the HTTP Handler
	httpHandler := handlers.NewHTTPHandler(toolboxService, templates, cfg.DefaultGroupSize, cfg.MaxUploadBytes)

	// 4. Set up the Gin router
	gin.SetMode(cfg.GinMode)
	r := newRouter(cfg.Verbose)
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	// 5. Serve static files from the embedded filesystem.
	assetsSubFS, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		logger.Fatalf("Failed to create assets sub-filesystem: %v", err)
	}
	r.StaticFS("/assets", http.FS(assetsSubFS))

	// 6. Register public routes (before middleware)
	httpHandler.RegisterPublicRoutes(r)

	// 7. Group routes that require tenant identification and apply middleware
	tenantRoutes := r.Group("/")
	tenantRoutes.Use(httpHandler.TenantMiddleware())
	httpHandler.RegisterTenantRoutes(tenantRoutes)

	// 8. Start the background janitor to clean up inactive sessions
	go func() {
		ticker := time.NewTicker(cfg.JanitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := toolboxService.CleanUpInactiveSessions()
				logger.Infof("Performed cleanup of inactive sessions, removed %d.", removed)
			}
		}
	}()

	// 9. Run the server
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server shutdown: %v", err)
		}
	}()

	logger.Infof("Server starting on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Failed to run server: %v", err)
	}
}

// initLogger sends all google/logger output to w. Console mirroring stays
// off so lines are not duplicated when w is stderr.
func initLogger(w io.Writer) *logger.Logger {
	return logger.Init("hrtoolbox", false, false, w)
}

// newRouter builds the gin engine. Access logs are written only in verbose mode.
func newRouter(verbose bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if verbose {
		r.Use(gin.Logger())
	}
	return r
}
