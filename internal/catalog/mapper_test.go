package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natureza_back_end/internal/models"
)

func TestGenerateEcologicID(t *testing.T) {
	assert.Equal(t, "ecologic-X1", GenerateEcologicID(models.EcologicRecord{Codigo: "X1", ID: 42}))
	assert.Equal(t, "ecologic-42", GenerateEcologicID(models.EcologicRecord{ID: 42}))
	assert.Equal(t, "ecologic-unknown", GenerateEcologicID(models.EcologicRecord{}))
}

func TestMapRecordDefaults(t *testing.T) {
	product := MapRecord(models.EcologicRecord{})

	assert.Equal(t, "ecologic-unknown", product.ID)
	assert.Equal(t, "Produto Ecológico", product.Name)
	assert.Equal(t, "Produto sem descrição disponível", product.Description)
	assert.Equal(t, CategoryEcologicos, product.Category)
	assert.Equal(t, 0.0, product.Price)
	assert.True(t, product.InStock)
	assert.False(t, product.Featured)
	assert.Empty(t, product.Images)
	assert.Equal(t, "Ecologic", product.Supplier)
	assert.Equal(t, "Supabase", product.ExternalSource)
	assert.True(t, product.IsEcological)
	assert.Nil(t, product.Dimensions.Height)
	assert.Nil(t, product.Dimensions.Width)
	assert.Nil(t, product.Dimensions.Length)
	assert.Nil(t, product.Dimensions.Weight)
}

func TestMapRecordCompleto(t *testing.T) {
	rec := models.EcologicRecord{
		Codigo:    "X1",
		Titulo:    "Caderno Reciclado 200 folhas",
		Descricao: "Caderno produzido com papel reciclado",
		Categoria: "Blocos | Cadernos",
		Img0:      "a.jpg",
		Preco:     "29.90",
		Status:    "disponivel",
		Promocao:  "true",
		Altura:    "21.0",
		Largura:   "14.5",
		Variacoes: []models.ColorVariant{
			{Cor: "Verde", LinkImage: "a.jpg"},
			{Cor: "Kraft", LinkImage: "b.jpg"},
			{Cor: "", LinkImage: "c.jpg"},
		},
	}

	product := MapRecord(rec)

	assert.Equal(t, "ecologic-X1", product.ID)
	assert.Equal(t, "Caderno Reciclado 200 folhas", product.Name)
	assert.Equal(t, CategoryPapelaria, product.Category)
	assert.Equal(t, 29.90, product.Price)
	assert.True(t, product.InStock)
	assert.True(t, product.Featured)
	assert.Equal(t, "X1", product.SupplierCode)
	assert.Equal(t, "X1", product.Reference)

	// a.jpg da variação já existe, c.jpg vem de variação sem cor
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, product.Images)
	require.Len(t, product.ColorVariations, 2)
	assert.Equal(t, "Verde", product.ColorVariations[0].Color)

	require.NotNil(t, product.Dimensions.Height)
	assert.Equal(t, 21.0, *product.Dimensions.Height)
	require.NotNil(t, product.Dimensions.Width)
	assert.Equal(t, 14.5, *product.Dimensions.Width)
	assert.Nil(t, product.Dimensions.Length)
}

func TestMapRecordPrecoInvalido(t *testing.T) {
	product := MapRecord(models.EcologicRecord{Preco: "sob consulta"})
	assert.Equal(t, 0.0, product.Price)
}

func TestMapRecordEstoque(t *testing.T) {
	assert.False(t, MapRecord(models.EcologicRecord{Status: "indisponivel"}).InStock)
	assert.False(t, MapRecord(models.EcologicRecord{Status: "esgotado"}).InStock)
	assert.True(t, MapRecord(models.EcologicRecord{Status: "disponivel"}).InStock)
	assert.True(t, MapRecord(models.EcologicRecord{Status: ""}).InStock)
}

func TestMapRecordPromocao(t *testing.T) {
	assert.True(t, MapRecord(models.EcologicRecord{Promocao: "true"}).Featured)
	assert.True(t, MapRecord(models.EcologicRecord{Promocao: "1"}).Featured)
	assert.False(t, MapRecord(models.EcologicRecord{Promocao: "sim"}).Featured)
	assert.False(t, MapRecord(models.EcologicRecord{Promocao: ""}).Featured)
}

func TestMapRecordDeterministico(t *testing.T) {
	rec := models.EcologicRecord{
		Codigo:    "92823",
		Titulo:    "Squeeze Inox 500ml",
		Preco:     "45.00",
		Variacoes: []models.ColorVariant{{Cor: "Prata", LinkImage: "s.jpg"}},
	}

	first := MapRecord(rec)
	second := MapRecord(rec)
	assert.Equal(t, first, second)
}

func TestMapRecordsPreservaOrdem(t *testing.T) {
	products := MapRecords([]models.EcologicRecord{
		{Codigo: "A"},
		{Codigo: "B"},
		{Codigo: "C"},
	})

	require.Len(t, products, 3)
	assert.Equal(t, "ecologic-A", products[0].ID)
	assert.Equal(t, "ecologic-B", products[1].ID)
	assert.Equal(t, "ecologic-C", products[2].ID)
}
