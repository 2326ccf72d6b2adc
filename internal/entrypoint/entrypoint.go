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

	"github.com/storlay/book-bookings-api/internal/avatars"
	"github.com/storlay/book-bookings-api/internal/config"
	"github.com/storlay/book-bookings-api/internal/database"
	http_controllers "github.com/storlay/book-bookings-api/internal/http"
	"github.com/storlay/book-bookings-api/internal/scheduler"
	"github.com/storlay/book-bookings-api/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server with
	// the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the expiry sweeper)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Bookings API v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Avatar storage on local disk
	avatarStore, err := avatars.NewStore(cfg.Avatars.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize avatar storage: %v", err)
	}

	bookingsService := services.NewBookingsService(db)
	booksService := services.NewBooksService(db)
	genresService := services.NewGenresService(db)
	usersService := services.NewUsersService(db, avatarStore)

	// Start the booking expiry sweeper if enabled
	var sweeper *scheduler.ExpirySweeper
	if cfg.Sweep.Enabled {
		sweeper = scheduler.NewExpirySweeper(bookingsService, cfg.Sweep.Schedule)
		if err := sweeper.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start expiry sweeper: %v", err)
		}
		log.Printf("Expiry sweeper started with schedule %q", cfg.Sweep.Schedule)
	}

	routerCfg := http_controllers.RouterConfig{
		Database: db,
		Bookings: bookingsService,
		Books:    booksService,
		Genres:   genresService,
		Users:    usersService,
		Version:  version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if sweeper != nil {
			sweeper.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
