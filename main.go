package main

import (
	"fmt"
	"log"

	"github.com/itsmelouis/kiosko/configs"
	"github.com/itsmelouis/kiosko/middlewares"
	"github.com/itsmelouis/kiosko/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedStaff(); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("kiosko backend running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
