package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natureza_back_end/internal/models"
)

func TestScoreProductNome(t *testing.T) {
	canetaAzul := models.Product{Name: "Caneta Azul"}
	canetaVermelha := models.Product{Name: "Caneta Vermelha Especial"}
	bloco := models.Product{Name: "Bloco de Notas"}

	// Termo completo (100) + duas palavras (40) + prefixo (50)
	assert.Equal(t, 190, ScoreProduct(canetaAzul, "caneta azul"))

	// Só a palavra "caneta" casa (20)
	assert.Equal(t, 20, ScoreProduct(canetaVermelha, "caneta azul"))

	assert.Equal(t, 0, ScoreProduct(bloco, "caneta azul"))
}

func TestScoreProductPrefixo(t *testing.T) {
	product := models.Product{Name: "Caneta Azul"}
	// Termo completo (100) + palavra (20) + prefixo (50)
	assert.Equal(t, 170, ScoreProduct(product, "caneta"))

	semPrefixo := models.Product{Name: "Kit Caneta"}
	// Termo completo (100) + palavra (20), sem o bônus de prefixo
	assert.Equal(t, 120, ScoreProduct(semPrefixo, "caneta"))
}

func TestScoreProductAcentos(t *testing.T) {
	product := models.Product{Name: "Nécessaire Ecológica"}
	// A busca sem acento casa com o nome acentuado
	assert.Equal(t, 170, ScoreProduct(product, "necessaire"))
}

func TestScoreProductCodigo(t *testing.T) {
	product := models.Product{
		Name:         "Squeeze Inox",
		SupplierCode: "92823",
		Reference:    "92823",
	}

	// Exata em supplierCode e reference (150 cada) + parcial nos dois (80 cada)
	assert.Equal(t, 460, ScoreProduct(product, "92823"))

	// Parcial apenas: 80 em cada campo
	assert.Equal(t, 160, ScoreProduct(product, "928"))
}

func TestScoreProductAjusteBolsa(t *testing.T) {
	caneta := models.Product{Name: "Caneta ecológica"}
	ecobag := models.Product{Name: "Ecobag algodão cru"}
	bolsa := models.Product{Name: "Bolsa de praia"}

	// Nome não contém "bolsa", só a penalidade se aplica
	assert.Equal(t, -30, ScoreProduct(caneta, "bolsa"))

	// Nome não contém "bolsa" mas contém termo relevante
	assert.Equal(t, 30, ScoreProduct(ecobag, "bolsa"))

	// Termo completo (100) + palavra (20) + prefixo (50) + bônus (30)
	assert.Equal(t, 200, ScoreProduct(bolsa, "bolsa"))
}

func TestScoreProductTermoVazio(t *testing.T) {
	product := models.Product{Name: "Caneta"}
	assert.Equal(t, 0, ScoreProduct(product, ""))
	assert.Equal(t, 0, ScoreProduct(product, "   "))
}

func TestRankProducts(t *testing.T) {
	products := []models.Product{
		{Name: "Bloco de Notas"},
		{Name: "Caneta Vermelha Especial"},
		{Name: "Caneta Azul"},
	}

	ranked := RankProducts(products, "caneta azul")

	require.Len(t, ranked, 2)
	assert.Equal(t, "Caneta Azul", ranked[0].Name)
	assert.Equal(t, "Caneta Vermelha Especial", ranked[1].Name)
}

func TestRankProductsExcluiPontuacaoNegativa(t *testing.T) {
	products := []models.Product{
		{Name: "Caneta ecológica"},
		{Name: "Bolsa de praia"},
	}

	ranked := RankProducts(products, "bolsa")

	require.Len(t, ranked, 1)
	assert.Equal(t, "Bolsa de praia", ranked[0].Name)
}

func TestRankProductsBuscaVazia(t *testing.T) {
	products := []models.Product{{Name: "Caneta"}}
	assert.Empty(t, RankProducts(products, ""))
	assert.Empty(t, RankProducts(products, "  "))
}

func TestRankProductsEmpateEstavel(t *testing.T) {
	products := []models.Product{
		{Name: "Caderno Kraft A5", SupplierCode: "1"},
		{Name: "Caderno Kraft A4", SupplierCode: "2"},
	}

	// Mesmo score: a ordem de entrada é preservada
	ranked := RankProducts(products, "caderno")
	require.Len(t, ranked, 2)
	assert.Equal(t, "1", ranked[0].SupplierCode)
	assert.Equal(t, "2", ranked[1].SupplierCode)
}
