package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"natureza_back_end/internal/database"
)

const (
	// Limites por endpoint
	APIMaxRequests    = 100 // Por minuto para os endpoints gerais
	SearchMaxRequests = 30  // Busca é mais cara, limite menor
	QuoteMaxRequests  = 5   // Solicitações de orçamento por IP

	// Durações
	APICooldown    = 1 * time.Minute
	SearchCooldown = 1 * time.Minute
	QuoteCooldown  = 30 * time.Minute
)

// APIRateLimit limita o número de requisições por IP (geral)
func APIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "api_requests:" + ip

		// Verificar o número de requisições no último minuto
		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= APIMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Muitas requisições. Tente novamente em 1 minuto",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		// Incrementar o contador
		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, APICooldown)
		pipe.Exec(ctx)

		// Headers de rate limit
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", APIMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", APIMaxRequests-requests-1))

		c.Next()
	}
}

// SearchRateLimit limita as buscas por IP
func SearchRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Só conta quando há termo de busca
		if c.Query("search") == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		ip := c.ClientIP()
		key := "search_requests:" + ip

		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= SearchMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Muitas buscas. Tente novamente em 1 minuto",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, SearchCooldown)
		pipe.Exec(ctx)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", SearchMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", SearchMaxRequests-requests-1))

		c.Next()
	}
}

// QuoteRateLimit limita solicitações de orçamento por IP, com cooldown
func QuoteRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "quote_attempts:" + ip

		// Verificar se o IP está em cooldown
		cooldownKey := "quote_cooldown:" + ip
		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitas solicitações. Tente novamente em %d minutos", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		// Verificar o número de solicitações
		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= QuoteMaxRequests {
			// Ativar o cooldown
			database.Redis.Set(ctx, cooldownKey, "1", QuoteCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitas solicitações. Tente novamente em %d minutos", int(QuoteCooldown.Minutes())),
				"retry_after": int(QuoteCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Só conta solicitações que foram criadas
		if c.Writer.Status() == http.StatusCreated {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, QuoteCooldown)
		}
	}
}
