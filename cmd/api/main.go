package main

import (
	"context"
	"log"
	"net/http"

	"github.com/fitstacklabs/fitness-api/internal/config"
	dbpkg "github.com/fitstacklabs/fitness-api/internal/db"
	"github.com/fitstacklabs/fitness-api/internal/keepalive"
	"github.com/fitstacklabs/fitness-api/internal/middleware"
	"github.com/fitstacklabs/fitness-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is up and running")
	})

	routes.RegisterRoutes(r, db, cfg)

	if cfg.KeepAliveURL != "" {
		go keepalive.New(cfg.KeepAliveURL, cfg.KeepAliveInterval).Run(context.Background())
	}

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
