package catalog

import (
	"strconv"
	"strings"

	"natureza_back_end/internal/models"
)

const (
	defaultProductName        = "Produto Ecológico"
	defaultProductDescription = "Produto sem descrição disponível"
)

// GenerateEcologicID deriva o ID estável de um produto ecológico.
// Usa o código do fornecedor se disponível, senão o ID da base de dados.
func GenerateEcologicID(rec models.EcologicRecord) string {
	baseID := "unknown"
	if rec.Codigo != "" {
		baseID = rec.Codigo
	} else if rec.ID != 0 {
		baseID = strconv.FormatInt(rec.ID, 10)
	}
	return "ecologic-" + baseID
}

// MapRecord converte uma linha bruta da ecologic_products_site para Product.
// Função total: todo campo tem um default definido e a mesma entrada sempre
// produz a mesma saída.
func MapRecord(rec models.EcologicRecord) models.Product {
	// Coletar todas as imagens disponíveis dos campos img_0, img_1, img_2
	images := []string{}
	for _, img := range []string{rec.Img0, rec.Img1, rec.Img2} {
		if img != "" {
			images = append(images, img)
		}
	}

	// Processar variações de cores e suas imagens
	colorVariations := []models.ColorVariation{}
	for _, variacao := range rec.Variacoes {
		if variacao.Cor == "" || variacao.LinkImage == "" {
			continue
		}
		colorVariations = append(colorVariations, models.ColorVariation{
			Color: variacao.Cor,
			Image: variacao.LinkImage,
		})
		// Adicionar a imagem da variação às imagens gerais se não estiver presente
		if !containsString(images, variacao.LinkImage) {
			images = append(images, variacao.LinkImage)
		}
	}

	name := rec.Titulo
	if name == "" {
		name = defaultProductName
	}
	description := rec.Descricao
	if description == "" {
		description = defaultProductDescription
	}

	// Processar preço: texto numérico, 0 se ausente ou inválido
	price := 0.0
	if rec.Preco != "" {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(rec.Preco), 64); err == nil {
			price = parsed
		}
	}

	// Em estoque, exceto pelos dois valores sentinela do fornecedor
	inStock := rec.Status != "indisponivel" && rec.Status != "esgotado"

	// Em promoção quando a flag é verdadeira em qualquer das representações
	featured := rec.Promocao == "true" || rec.Promocao == "1"

	return models.Product{
		ID:                     GenerateEcologicID(rec),
		Name:                   name,
		Description:            description,
		Category:               Classify(rec),
		Images:                 images,
		SustainabilityFeatures: []string{"sustentavel"},
		CustomizationOptions:   []string{},
		Price:                  price,
		InStock:                inStock,
		Featured:               featured,
		IsEcological:           true,
		IsExternal:             false,
		ExternalSource:         "Supabase",
		Supplier:               "Ecologic",
		SupplierCode:           rec.Codigo,
		Reference:              rec.Codigo,
		EcologicDatabaseID:     rec.ID,
		AllImages:              images,
		Dimensions: models.Dimensions{
			Height: parseOptionalFloat(rec.Altura),
			Width:  parseOptionalFloat(rec.Largura),
			Length: parseOptionalFloat(rec.Comprimento),
			Weight: parseOptionalFloat(rec.Peso),
		},
		PrimaryColor:    rec.CorWebPrincipal,
		ColorVariations: colorVariations,
	}
}

// MapRecords aplica MapRecord preservando a ordem das linhas
func MapRecords(recs []models.EcologicRecord) []models.Product {
	products := make([]models.Product, 0, len(recs))
	for _, rec := range recs {
		products = append(products, MapRecord(rec))
	}
	return products
}

// parseOptionalFloat difere do preço: ausente ou inválido fica nulo, não 0
func parseOptionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
