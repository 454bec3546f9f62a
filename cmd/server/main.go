package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/cs1060f25/perdogarcia-hw4/internal/config"
	"github.com/cs1060f25/perdogarcia-hw4/internal/database"
	"github.com/cs1060f25/perdogarcia-hw4/internal/handler"
	"github.com/cs1060f25/perdogarcia-hw4/internal/middleware"
	"github.com/cs1060f25/perdogarcia-hw4/internal/repository"
	"github.com/cs1060f25/perdogarcia-hw4/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	// A missing database file is reported per request (500 "Database not
	// found"), matching the deployment model where data ships separately
	// from the binary. Warn loudly but keep serving.
	if _, err := os.Stat(cfg.DBPath); err != nil {
		log.Printf("warning: database file %s not found; lookups will fail until it exists", cfg.DBPath)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Rate limiting is optional: without Redis the middleware is a
	// pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis not configured, rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	h := handler.NewCountyDataHandler(repository.NewHealthRepo(db))
	router.RegisterRoutes(e, h)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
