package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/sthandier/antiguedades-api/internal/config"
	"github.com/sthandier/antiguedades-api/internal/database"
	"github.com/sthandier/antiguedades-api/internal/middleware"
	"github.com/sthandier/antiguedades-api/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.PoolSize)
	if err != nil {
		log.Fatalf("error de conexión a MySQL: %v", err)
	}
	log.Println("¡Conexión a MySQL exitosa!")

	// nil when redis is unreachable; the limiter then passes through
	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = router.HTTPErrorHandler
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.Register(e, db)

	addr := ":" + cfg.Port
	log.Printf("servidor escuchando en %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
