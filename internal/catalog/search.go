package catalog

import (
	"sort"
	"strings"

	"natureza_back_end/internal/models"
)

// Pesos da pontuação de relevância da busca
const (
	scoreFullNameMatch   = 100
	scoreWordMatch       = 20
	scoreCodeExactMatch  = 150
	scoreCodePartial     = 80
	scoreNamePrefix      = 50
	scoreBagRelevance    = 30
	penaltyBagIrrelevant = 30
)

// Termos usados no ajuste de relevância quando a busca é por "bolsa"
var (
	bagIrrelevantTerms = []string{"caneta", "lápis", "agenda", "caderno", "bloco", "adesivo", "alicate", "ferramenta"}
	bagRelevantTerms   = []string{"bolsa", "sacola", "mochila", "necessaire", "ecobag", "bag"}
)

// ScoreProduct calcula a pontuação de relevância de um produto para um termo
// de busca. As regras são aditivas e independentes: várias podem pontuar ao
// mesmo tempo, inclusive a correspondência exata e a parcial de código.
func ScoreProduct(product models.Product, query string) int {
	searchTerm := strings.ToLower(strings.TrimSpace(query))
	if searchTerm == "" {
		return 0
	}

	productName := NormalizeText(product.Name)
	normalizedSearchTerm := NormalizeText(searchTerm)

	score := 0

	// Correspondência do termo completo no nome
	if strings.Contains(productName, normalizedSearchTerm) {
		score += scoreFullNameMatch
	}

	// Palavras individuais no nome
	for _, word := range strings.Fields(searchTerm) {
		if strings.Contains(productName, NormalizeText(word)) {
			score += scoreWordMatch
		}
	}

	// Correspondência exata em supplierCode ou reference
	if product.SupplierCode != "" && product.SupplierCode == searchTerm {
		score += scoreCodeExactMatch
	}
	if product.Reference != "" && product.Reference == searchTerm {
		score += scoreCodeExactMatch
	}

	// Correspondência parcial em supplierCode ou reference
	if product.SupplierCode != "" && strings.Contains(product.SupplierCode, searchTerm) {
		score += scoreCodePartial
	}
	if product.Reference != "" && strings.Contains(product.Reference, searchTerm) {
		score += scoreCodePartial
	}

	// Bônus para correspondência no início do nome
	if strings.HasPrefix(productName, normalizedSearchTerm) {
		score += scoreNamePrefix
	}

	// Ajuste de relevância quando a busca é por bolsas: penaliza produtos
	// que claramente não são bolsas e bonifica os que claramente são
	if searchTerm == "bolsa" || searchTerm == "bolsas" {
		if containsAny(productName, bagIrrelevantTerms) {
			score -= penaltyBagIrrelevant
		}
		if containsAny(productName, bagRelevantTerms) {
			score += scoreBagRelevance
		}
	}

	return score
}

// RankProducts devolve apenas os produtos com pontuação positiva, ordenados
// por relevância decrescente. Empates preservam a ordem de entrada.
func RankProducts(products []models.Product, query string) []models.Product {
	if strings.TrimSpace(query) == "" {
		return []models.Product{}
	}

	type scoredProduct struct {
		product models.Product
		score   int
	}

	scored := make([]scoredProduct, 0, len(products))
	for _, product := range products {
		if score := ScoreProduct(product, query); score > 0 {
			scored = append(scored, scoredProduct{product: product, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]models.Product, 0, len(scored))
	for _, item := range scored {
		ranked = append(ranked, item.product)
	}
	return ranked
}
