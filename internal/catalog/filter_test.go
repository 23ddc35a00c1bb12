package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natureza_back_end/internal/models"
)

func names(products []models.Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.Name)
	}
	return result
}

func TestFilterByCategorySoNome(t *testing.T) {
	products := []models.Product{
		{Name: "Agenda 2026 capa kraft"},
		{Name: "Organizador de mesa", Description: "Acompanha agenda semanal"},
		{Name: "Porta agenda executivo"},
	}

	filtered := FilterByCategory(products, "agenda")

	// A descrição nunca entra no filtro, e "porta" exclui
	assert.Equal(t, []string{"Agenda 2026 capa kraft"}, names(filtered))
}

func TestFilterByCategoryExclusaoPorta(t *testing.T) {
	products := []models.Product{
		{Name: "Caneca de bambu"},
		{Name: "Porta caneca de cortiça"},
	}

	filtered := FilterByCategory(products, "canecas")
	assert.Equal(t, []string{"Caneca de bambu"}, names(filtered))
}

func TestFilterByCategoryPortaCartao(t *testing.T) {
	products := []models.Product{
		{Name: "Porta-Cartão de couro reciclado"},
		{Name: "Carteira slim"},
		{Name: "Agenda 2026"},
	}

	// Única categoria onde "porta" é exigido em vez de excluído
	filtered := FilterByCategory(products, "porta-cartão e carteira")
	assert.Equal(t, []string{"Porta-Cartão de couro reciclado", "Carteira slim"}, names(filtered))
}

func TestFilterByCategoryBolsasETermicas(t *testing.T) {
	products := []models.Product{
		{Name: "Bolsa de algodão"},
		{Name: "Bolsa Térmica 10 Litros"},
	}

	// Térmica sai de "bolsas" e entra em "bolsas térmicas"
	assert.Equal(t, []string{"Bolsa de algodão"}, names(FilterByCategory(products, "bolsas")))
	assert.Equal(t, []string{"Bolsa Térmica 10 Litros"}, names(FilterByCategory(products, "bolsas térmicas")))
}

func TestFilterByCategorySqueezesEGarrafas(t *testing.T) {
	products := []models.Product{
		{Name: "Garrafa inox 500ml"},
		{Name: "Squeeze dobrável"},
		{Name: "Abridor de garrafa metálico"},
		{Name: "Porta garrafa neoprene"},
	}

	filtered := FilterByCategory(products, "squeezes e garrafas")
	assert.Equal(t, []string{"Garrafa inox 500ml", "Squeeze dobrável"}, names(filtered))
}

func TestFilterByCategoryCozinha(t *testing.T) {
	products := []models.Product{
		{Name: "Tábua de bambu"},
		{Name: "Kit tábua e faca"},
		{Name: "Suporte para panela"},
		{Name: "Marmita térmica"},
	}

	filtered := FilterByCategory(products, "cozinha")
	assert.Equal(t, []string{"Tábua de bambu", "Marmita térmica"}, names(filtered))
}

func TestFilterByCategoryGenerico(t *testing.T) {
	products := []models.Product{
		{Name: "Caneta eco", Category: CategoryPapelaria},
		{Name: "Porta caneta", Category: CategoryPapelaria},
		{Name: "Squeeze", Category: CategoryEcologicos},
	}

	// Sem regra dedicada: casa pelo campo category, excluindo "porta" no nome
	filtered := FilterByCategory(products, "papelaria")
	assert.Equal(t, []string{"Caneta eco"}, names(filtered))
}

func TestFilterByCategoryTokenVazio(t *testing.T) {
	products := []models.Product{{Name: "Caneta"}, {Name: "Caneca"}}
	require.Len(t, FilterByCategory(products, ""), 2)
}
