package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"natureza_back_end/internal/catalog"
	"natureza_back_end/internal/database"
	"natureza_back_end/internal/models"
	"natureza_back_end/internal/store"
)

const (
	rawRecordsCacheKey = "ecologic:raw"
	rawRecordsCacheTTL = 10 * time.Minute
)

// loadActiveRecords busca os produtos ativos do Supabase com cache no Redis.
// O catálogo muda pouco, então 10 minutos de TTL segura bem a carga.
func loadActiveRecords(ctx context.Context) ([]models.EcologicRecord, error) {
	// ✅ Verifica o cache Redis
	if val, err := database.RedisClient.Get(ctx, rawRecordsCacheKey).Result(); err == nil && val != "" {
		var cached []models.EcologicRecord
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	records, err := store.FetchActiveRecords(ctx)
	if err != nil {
		return nil, err
	}

	// ✅ Coloca em cache
	if data, err := json.Marshal(records); err == nil {
		database.RedisClient.Set(ctx, rawRecordsCacheKey, data, rawRecordsCacheTTL)
	}

	return records, nil
}

// ListProducts lista os produtos com busca, filtro de categoria, ordenação e paginação
func ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	query := catalog.ListingQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     catalog.ClampPage(page),
		Limit:    catalog.ClampLimit(limit),
	}

	records, err := loadActiveRecords(ctx)
	if err != nil {
		log.Println("❌ Erro ao buscar produtos:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	products := catalog.MapRecords(records)
	if len(products) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    []models.Product{},
		})
		return
	}

	items, pagination := catalog.ApplyListing(products, query)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":      items,
			"pagination": pagination,
		},
	})
}

// GetProductByID busca um produto por ID, com estratégias de fallback.
// O front antigo gerava IDs com underscore, então a busca exata nem sempre acerta.
func GetProductByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	records, err := loadActiveRecords(ctx)
	if err != nil {
		log.Println("❌ Erro ao buscar produtos:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	products := catalog.MapRecords(records)
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Nenhum produto encontrado",
			"debug": gin.H{
				"searchedId":    id,
				"totalProducts": 0,
			},
		})
		return
	}

	// Estratégia 1: busca exata por ID
	var found *models.Product
	for i := range products {
		if products[i].ID == id {
			found = &products[i]
			break
		}
	}

	// Estratégia 2: casar partes do ID com código ou título do registro bruto
	if found == nil {
		stripped := strings.TrimPrefix(strings.TrimPrefix(id, "ecologic-"), "ecologic_")
		idParts := strings.Split(stripped, "_")

		for i := range records {
			rec := records[i]
			for _, part := range idParts {
				if part == "" {
					continue
				}
				if (rec.Codigo != "" && strings.Contains(rec.Codigo, part)) ||
					(rec.Titulo != "" && strings.Contains(strings.ToLower(rec.Titulo), strings.ToLower(part))) {
					mapped := catalog.MapRecord(rec)
					found = &mapped
					break
				}
			}
			if found != nil {
				break
			}
		}
	}

	// Estratégia 3: similaridade de nome
	if found == nil && len(id) > 3 {
		searchTerm := strings.ToLower(strings.ReplaceAll(
			strings.TrimPrefix(strings.TrimPrefix(id, "ecologic-"), "ecologic_"), "_", " "))

		for i := range products {
			p := products[i]
			if strings.Contains(strings.ToLower(p.Name), searchTerm) ||
				strings.Contains(strings.ToLower(p.Description), searchTerm) {
				found = &products[i]
				break
			}
		}
	}

	if found == nil {
		sampleIDs := make([]string, 0, 5)
		for i := 0; i < len(products) && i < 5; i++ {
			sampleIDs = append(sampleIDs, products[i].ID)
		}
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Produto não encontrado",
			"debug": gin.H{
				"searchedId":    id,
				"totalProducts": len(products),
				"sampleIds":     sampleIDs,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    found,
	})
}

// GetFeaturedProducts retorna os primeiros produtos da tabela (vitrine da home)
func GetFeaturedProducts(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if err != nil || limit < 1 {
		limit = 4
	}

	records, err := store.FetchRecords(ctx, limit)
	if err != nil {
		log.Println("❌ Erro ao buscar produtos em destaque:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao buscar produtos em destaque",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    catalog.MapRecords(records),
	})
}

// GetHighlightedProducts retorna os produtos da tabela produtos_destaque
func GetHighlightedProducts(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	records, err := store.FetchHighlightedRecords(ctx, limit)
	if err != nil {
		log.Println("❌ Erro ao buscar produtos em destaque:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao buscar produtos em destaque",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    catalog.MapRecords(records),
	})
}

// ListCategories lista as categorias distintas dos produtos
func ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := store.DistinctCategories(ctx)
	if err != nil {
		log.Println("❌ Erro ao buscar categorias:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao buscar categorias",
		})
		return
	}

	type categoryEntry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	result := make([]categoryEntry, 0, len(categories))
	for _, cat := range categories {
		cat = strings.TrimSpace(cat)
		if cat == "" {
			continue
		}
		result = append(result, categoryEntry{
			ID:   strings.ReplaceAll(strings.ToLower(cat), " ", "_"),
			Name: cat,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
