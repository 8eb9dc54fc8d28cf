package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"wastewise_portal/internal/api"
	"wastewise_portal/internal/config"
	"wastewise_portal/internal/controllers"
	"wastewise_portal/internal/logger"
	"wastewise_portal/internal/middleware"
	"wastewise_portal/internal/routes"
	"wastewise_portal/internal/session"
	"wastewise_portal/internal/store"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg)

	client := api.New(cfg.APIBaseURL)
	stores := store.NewStores(client)

	// Prime the caches; screens render whatever loaded and surface the rest
	// as retryable banners.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	stores.WarmUp(ctx)
	cancel()

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	app := controllers.NewApp(cfg, client, stores, sessions)

	r := routes.SetupRouter(app, sessions)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
