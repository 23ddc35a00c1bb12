package routes

import (
	"github.com/gin-gonic/gin"

	"natureza_back_end/internal/handlers"
	"natureza_back_end/internal/handlers/product"
	"natureza_back_end/internal/handlers/quote"
	"natureza_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api", middleware.APIRateLimit())

	// Health
	api.GET("/health", handlers.HealthCheck)

	// Produtos
	products := api.Group("/products")
	{
		products.GET("", middleware.SearchRateLimit(), product.ListProducts)
		products.GET("/featured/list", product.GetFeaturedProducts)
		products.GET("/highlighted", product.GetHighlightedProducts)
		products.GET("/categories/list", product.ListCategories)
		products.GET("/:id", product.GetProductByID)
	}

	// Orçamentos
	quotes := api.Group("/quotes")
	{
		quotes.POST("", middleware.QuoteRateLimit(), quote.CreateQuote)
		quotes.GET("", quote.ListQuotes)
		quotes.GET("/stats/dashboard", quote.GetQuoteStats)
		quotes.GET("/:id", quote.GetQuoteByID)
		quotes.PUT("/:id/status", quote.UpdateQuoteStatus)
		quotes.DELETE("/:id", quote.DeleteQuote)
	}

	// Proxy de imagens
	proxy := api.Group("/proxy")
	{
		proxy.GET("/image", handlers.ProxyImage)
		proxy.GET("/test", handlers.ProxyTestImage)
	}
}
