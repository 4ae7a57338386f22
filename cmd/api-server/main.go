package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"moviematch/internal/match"
	"moviematch/internal/room"
	"moviematch/internal/tmdb"
	"moviematch/internal/watchmode"
	"moviematch/pkg/database"
	"moviematch/pkg/utils"
)

func main() {
	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	providers := utils.LoadProviderConfig()
	if providers.TMDBAPIKey == "" {
		log.Println("TMDB_API_KEY not set; matches will serve the fallback catalog")
	}
	if providers.WatchmodeAPIKey == "" {
		log.Println("WATCHMODE_API_KEY not set; streaming availability disabled")
	}

	router := gin.Default()
	router.Use(cors.Default())

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/api/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"ok":       false,
				"db_error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"db":        cfg.Path,
			"tmdb":      providers.TMDBAPIKey != "",
			"watchmode": providers.WatchmodeAPIKey != "",
		})
	})

	api := router.Group("/api")

	roomRepo := room.NewRepo(db)
	roomHandler := room.NewHandler(roomRepo)
	roomHandler.RegisterRoutes(api)

	tmdbClient := tmdb.NewClient(providers.TMDBAPIKey)
	orchestrator := match.NewOrchestrator(
		roomRepo,
		tmdbClient,
		tmdbClient,
		watchmode.NewClient(providers.WatchmodeAPIKey),
	)
	matchHandler := match.NewHandler(orchestrator)
	matchHandler.RegisterRoutes(api)

	httpSrv := &http.Server{
		Addr:    utils.ListenAddr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
