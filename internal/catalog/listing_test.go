package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natureza_back_end/internal/models"
)

func catalogoExemplo() []models.Product {
	products := []models.Product{
		{Name: "Squeeze Inox 500ml", Category: CategoryEcologicos, SupplierCode: "92823", Reference: "92823"},
		{Name: "Caneta bambu", Category: CategoryPapelaria},
		{Name: "Caneca cerâmica", Category: CategoryCasaEscritorio},
		{Name: "Bolsa de algodão", Category: CategoryAcessorios},
		{Name: "Kit escritório", Category: CategoryPapelaria, Description: "Acompanha caneta esferográfica"},
	}
	for i := 0; i < 5; i++ {
		products = append(products, models.Product{
			Name:     fmt.Sprintf("Chaveiro modelo %d", i),
			Category: CategoryAcessorios,
		})
	}
	return products
}

func TestApplyListingBuscaPorCodigo(t *testing.T) {
	items, pagination := ApplyListing(catalogoExemplo(), ListingQuery{Search: "92823", Page: 1, Limit: 100})

	require.Len(t, items, 1)
	assert.Equal(t, "Squeeze Inox 500ml", items[0].Name)
	assert.Equal(t, 1, pagination.TotalItems)
}

func TestApplyListingCanetasPorNomeOuDescricao(t *testing.T) {
	items, _ := ApplyListing(catalogoExemplo(), ListingQuery{Category: "canetas", Page: 1, Limit: 100})

	// "Kit escritório" entra pela descrição, regra especial de canetas
	assert.Equal(t, []string{"Caneta bambu", "Kit escritório"}, names(items))
}

func TestApplyListingCanecas(t *testing.T) {
	items, _ := ApplyListing(catalogoExemplo(), ListingQuery{Category: "canecas", Page: 1, Limit: 100})
	assert.Equal(t, []string{"Caneca cerâmica"}, names(items))
}

func TestApplyListingCategoriaAll(t *testing.T) {
	all, pagination := ApplyListing(catalogoExemplo(), ListingQuery{Category: "all", Page: 1, Limit: 100})
	assert.Equal(t, 10, pagination.TotalItems)
	assert.Len(t, all, 10)
}

func TestApplyListingOrdenacao(t *testing.T) {
	products := []models.Product{
		{Name: "B", Category: "z"},
		{Name: "C", Category: "x"},
		{Name: "A", Category: "y"},
	}

	asc, _ := ApplyListing(products, ListingQuery{Sort: "name_asc", Page: 1, Limit: 100})
	assert.Equal(t, []string{"A", "B", "C"}, names(asc))

	desc, _ := ApplyListing(products, ListingQuery{Sort: "name_desc", Page: 1, Limit: 100})
	assert.Equal(t, []string{"C", "B", "A"}, names(desc))

	catAsc, _ := ApplyListing(products, ListingQuery{Sort: "category_asc", Page: 1, Limit: 100})
	assert.Equal(t, []string{"C", "A", "B"}, names(catAsc))

	catDesc, _ := ApplyListing(products, ListingQuery{Sort: "category_desc", Page: 1, Limit: 100})
	assert.Equal(t, []string{"B", "A", "C"}, names(catDesc))

	// Sort desconhecido cai no name_asc
	fallback, _ := ApplyListing(products, ListingQuery{Sort: "price_asc", Page: 1, Limit: 100})
	assert.Equal(t, []string{"A", "B", "C"}, names(fallback))
}

func TestPaginate(t *testing.T) {
	products := make([]models.Product, 5)
	for i := range products {
		products[i] = models.Product{Name: fmt.Sprintf("P%d", i)}
	}

	items, pagination := Paginate(products, 2, 2)

	assert.Equal(t, []string{"P2", "P3"}, names(items))
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 5, pagination.TotalItems)
	assert.Equal(t, 2, pagination.ItemsPerPage)
	assert.True(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPrevPage)
}

func TestPaginateAlemDoFim(t *testing.T) {
	products := []models.Product{{Name: "P0"}}

	items, pagination := Paginate(products, 5, 10)

	assert.Empty(t, items)
	assert.Equal(t, 5, pagination.CurrentPage)
	assert.Equal(t, 1, pagination.TotalPages)
	assert.False(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPrevPage)
}

func TestClampPageELimit(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-3))
	assert.Equal(t, 7, ClampPage(7))

	assert.Equal(t, DefaultPageLimit, ClampLimit(0))
	assert.Equal(t, DefaultPageLimit, ClampLimit(-1))
	assert.Equal(t, MaxPageLimit, ClampLimit(5000))
	assert.Equal(t, 50, ClampLimit(50))
}
