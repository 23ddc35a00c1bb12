package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"natureza_back_end/internal/config"
	"natureza_back_end/internal/database"
	"natureza_back_end/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Pré-aquecer o cache Redis
	warmupRedisCache()

	r := gin.Default()

	// O front roda em domínio próprio, liberamos tudo como a versão antiga fazia
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Cross-Origin-Resource-Policy"},
		AllowCredentials: false,
		MaxAge:           24 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Servidor Natureza Brindes rodando na porta", port)
	r.Run(":" + port)
}

// warmupRedisCache pré-aquece o cache Redis para evitar a latência da primeira chamada
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-aquecido")
	}
}
