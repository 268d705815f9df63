package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/customers"
	"github.com/mrlokans/library/internal/database/loans"
	http_controllers "github.com/mrlokans/library/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// In-flight requests are done, so the pool can go.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// NewApp opens the database, makes sure the schema exists and builds the
// router. The caller owns the returned database and must close it.
func NewApp(ctx context.Context, cfg *config.Config, version string) (*gin.Engine, *database.Database, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		Books:       books.NewRepository(db.DB),
		Customers:   customers.NewRepository(db.DB),
		Loans:       loans.NewRepository(db.DB),
		Version:     version,
		DocsEnabled: cfg.Docs.Enabled,
	})

	return router, db, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library API v%s", version)
	gin.SetMode(cfg.HTTP.GinMode)

	router, db, err := NewApp(context.Background(), cfg, version)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	if cfg.Docs.Enabled {
		log.Printf("API docs available at /swagger/index.html")
	}

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
