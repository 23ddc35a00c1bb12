package handlers

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"natureza_back_end/internal/services"
)

const proxyFetchTimeout = 15 * time.Second

// Limite de 10MB por imagem, o proxy não serve arquivos maiores
const proxyMaxImageBytes = 10 << 20

var proxyHTTPClient = &http.Client{Timeout: proxyFetchTimeout}

// ProxyImage busca uma imagem externa e a serve com cache no MinIO.
// Os fornecedores não mandam CORS, então o front consome tudo por aqui.
func ProxyImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro url obrigatório"})
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL inválida"})
		return
	}

	// 1. Tentar o cache no MinIO primeiro
	cacheKey := services.ImageCacheKey(rawURL)
	if data, contentType, err := services.GetCachedImage(c.Request.Context(), cacheKey); err == nil {
		c.Header("Cache-Control", "public, max-age=86400")
		c.Header("Cross-Origin-Resource-Policy", "cross-origin")
		c.Data(http.StatusOK, contentType, data)
		return
	}

	// 2. Buscar da origem
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL inválida"})
		return
	}
	req.Header.Set("User-Agent", "NaturezaBrindes-ImageProxy/1.0")

	resp, err := proxyHTTPClient.Do(req)
	if err != nil {
		log.Println("⚠️ Proxy: falha ao buscar imagem:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Falha ao buscar imagem de origem"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Origem retornou erro",
			"status": resp.StatusCode,
		})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Conteúdo não é uma imagem"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, proxyMaxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Falha ao ler imagem de origem"})
		return
	}

	// 3. Guardar no cache para as próximas requisições (best-effort)
	if err := services.CacheImage(c.Request.Context(), cacheKey, data, contentType); err != nil {
		log.Println("⚠️ Proxy: falha ao cachear imagem:", err)
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("Cross-Origin-Resource-Policy", "cross-origin")
	c.Data(http.StatusOK, contentType, data)
}

// ProxyTestImage verifica se uma URL de imagem responde, sem baixar o corpo
func ProxyTestImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro url obrigatório"})
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL inválida"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodHead, rawURL, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL inválida"})
		return
	}
	req.Header.Set("User-Agent", "NaturezaBrindes-ImageProxy/1.0")

	resp, err := proxyHTTPClient.Do(req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"valid":   false,
			"url":     rawURL,
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"valid":         resp.StatusCode == http.StatusOK && strings.HasPrefix(contentType, "image/"),
		"status":        resp.StatusCode,
		"contentType":   contentType,
		"contentLength": resp.Header.Get("Content-Length"),
		"url":           rawURL,
		"hostname":      parsed.Hostname(),
	})
}
