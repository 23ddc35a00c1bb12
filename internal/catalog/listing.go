package catalog

import (
	"sort"
	"strings"

	"natureza_back_end/internal/models"
)

// Limites de paginação da listagem
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 2000
)

// ListingQuery são os parâmetros aceitos pela listagem de produtos
type ListingQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int
	Limit    int
}

// ApplyListing executa o pipeline completo da listagem sobre os produtos já
// mapeados: busca por relevância, filtro de categoria, ordenação e paginação.
// Qualquer ponto de entrada da listagem passa por aqui para não divergir.
func ApplyListing(products []models.Product, query ListingQuery) ([]models.Product, models.Pagination) {
	filtered := products

	// Filtro por busca com pontuação de relevância
	if strings.TrimSpace(query.Search) != "" {
		filtered = RankProducts(filtered, query.Search)
	}

	// Filtro por categoria ("all" significa sem filtro)
	categoryTerm := strings.ToLower(strings.TrimSpace(query.Category))
	if categoryTerm != "" && categoryTerm != "all" {
		switch categoryTerm {
		case "canetas":
			// Para canetas, buscar no nome ou na descrição
			filtered = filterByNameOrDescription(filtered, "caneta")
		case "canecas":
			// Para canecas, buscar no nome ou na descrição
			filtered = filterByNameOrDescription(filtered, "caneca")
		default:
			filtered = FilterByCategory(filtered, categoryTerm)
		}
	}

	// Ordenação estável para não bagunçar a ordem de relevância em empates
	switch query.Sort {
	case "name_desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name > filtered[j].Name })
	case "category_asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Category < filtered[j].Category })
	case "category_desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Category > filtered[j].Category })
	default: // name_asc
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	}

	return Paginate(filtered, query.Page, query.Limit)
}

// filterByNameOrDescription mantém os produtos cujo nome OU descrição contém
// o termo normalizado
func filterByNameOrDescription(products []models.Product, term string) []models.Product {
	normalizedTerm := NormalizeText(term)
	filtered := []models.Product{}
	for _, product := range products {
		if strings.Contains(NormalizeText(product.Name), normalizedTerm) ||
			strings.Contains(NormalizeText(product.Description), normalizedTerm) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// Paginate fatia a lista já filtrada/ordenada e calcula os metadados
func Paginate(products []models.Product, page, limit int) ([]models.Product, models.Pagination) {
	page = ClampPage(page)
	limit = ClampLimit(limit)

	totalItems := len(products)
	totalPages := (totalItems + limit - 1) / limit

	startIndex := (page - 1) * limit
	endIndex := startIndex + limit
	if startIndex > totalItems {
		startIndex = totalItems
	}
	if endIndex > totalItems {
		endIndex = totalItems
	}

	return products[startIndex:endIndex], models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// ClampPage garante página mínima 1
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit garante limite entre 1 e o máximo por página
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}
