package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck responde o status da API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
