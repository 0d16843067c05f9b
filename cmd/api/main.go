package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/esteticapro/clinic-manager/internal/config"
	dbpkg "github.com/esteticapro/clinic-manager/internal/db"
	"github.com/esteticapro/clinic-manager/internal/logger"
	"github.com/esteticapro/clinic-manager/internal/routes"
)

func main() {

	// .env é opcional, produção usa variáveis reais
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server starting", map[string]any{"addr": cfg.Addr()})
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", err)
	}
}
