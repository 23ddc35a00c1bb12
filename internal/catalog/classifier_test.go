package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"natureza_back_end/internal/models"
)

func TestClassifyCategoriaExplicita(t *testing.T) {
	tests := []struct {
		categoria string
		want      string
	}{
		{"Canetas | Esferográficas", CategoryPapelaria},
		{"Escritório", CategoryPapelaria},
		{"Escritorio", CategoryPapelaria},
		{"Bolsas | Mochilas", CategoryAcessorios},
		{"Nécessaire", CategoryAcessorios},
		{"Canecas | Cerâmica", CategoryCasaEscritorio},
		{"Garrafas", CategoryCasaEscritorio},
		{"Malas de viagem", CategoryTextil},
		{"Chaveiros", CategoryAcessorios},
		{"Diversos", CategoryAcessorios},
		{"Brinquedos", CategoryEcologicos},
		{"", CategoryEcologicos},
	}

	for _, tt := range tests {
		got := Classify(models.EcologicRecord{Categoria: tt.categoria})
		assert.Equal(t, tt.want, got, "categoria %q", tt.categoria)
	}
}

func TestClassifyOrdemDasRegras(t *testing.T) {
	// "canetas" aparece antes de "canecas" na tabela, a primeira regra vence
	got := Classify(models.EcologicRecord{Categoria: "Canetas | Canecas"})
	assert.Equal(t, CategoryPapelaria, got)
}

func TestClassifyReclassificacaoPorTexto(t *testing.T) {
	// Categoria não casa com nenhuma regra, mas o título tem palavra de papelaria
	got := Classify(models.EcologicRecord{
		Categoria: "Brindes diversos",
		Titulo:    "Caderno capa dura",
	})
	assert.Equal(t, CategoryPapelaria, got)

	// Palavra de papelaria na descrição também reclassifica
	got = Classify(models.EcologicRecord{
		Titulo:    "Kit executivo",
		Descricao: "Acompanha agenda e estojo",
	})
	assert.Equal(t, CategoryPapelaria, got)
}

func TestClassifyEstagioBNaoSobrescreveFinais(t *testing.T) {
	// casa-escritorio é decisão final: o título com "caneta" não reclassifica
	got := Classify(models.EcologicRecord{
		Categoria: "Canecas",
		Titulo:    "Caneca com caneta brinde",
	})
	assert.Equal(t, CategoryCasaEscritorio, got)
}

func TestClassifyEstagioBSobrescreveNaoFinais(t *testing.T) {
	// acessorios não é final: palavra de escritório no título reclassifica
	got := Classify(models.EcologicRecord{
		Categoria: "Chaveiros",
		Titulo:    "Chaveiro régua multifunção",
	})
	assert.Equal(t, CategoryPapelaria, got)
}

func TestClassifyDefault(t *testing.T) {
	got := Classify(models.EcologicRecord{
		Categoria: "Sustentáveis",
		Titulo:    "Squeeze bambu",
		Descricao: "Garrafa reutilizável",
	})
	assert.Equal(t, CategoryEcologicos, got)
}
