package catalog

import (
	"strings"

	"natureza_back_end/internal/models"
)

// categoryFilterRule descreve um filtro de categoria do catálogo.
// Terms: pelo menos um precisa aparecer no nome normalizado do produto.
// Exclude: nenhum pode aparecer. A descrição nunca é consultada aqui.
type categoryFilterRule struct {
	Terms   []string
	Exclude []string
}

// Tabela de filtros por categoria do catálogo, chaveada pelo nome da
// categoria em minúsculas. Quase todas excluem "porta" para não trazer
// porta-canetas, porta-copos etc.; a exceção é a própria categoria de
// porta-cartões, que exige o termo.
var categoryFilterRules = map[string]categoryFilterRule{
	"agenda":               {Terms: []string{"agenda"}, Exclude: []string{"porta"}},
	"blocos e cadernetas":  {Terms: []string{"bloco", "caderno", "caderneta"}, Exclude: []string{"porta"}},
	"bolsas":               {Terms: []string{"bolsa"}, Exclude: []string{"termica", "thermal", "porta"}},
	"bolsas térmicas":      {Terms: []string{"termica"}, Exclude: []string{"porta"}},
	"canecas":              {Terms: []string{"caneca"}, Exclude: []string{"porta"}},
	"canetas":              {Terms: []string{"caneta"}, Exclude: []string{"porta"}},
	"canivetes":            {Terms: []string{"canivete"}, Exclude: []string{"porta"}},
	"canudos":              {Terms: []string{"canudo"}, Exclude: []string{"porta"}},
	"chaveiros":            {Terms: []string{"chaveiro"}, Exclude: []string{"porta"}},
	"copos":                {Terms: []string{"copo"}, Exclude: []string{"porta"}},
	"cozinha":              {Terms: []string{"tabua", "abridor", "panela", "marmita", "tempero", "talher"}, Exclude: []string{"porta", "suporte", "kit tabua"}},
	"eletrônicos":          {Terms: []string{"relogio", "pen", "som", "carregador"}, Exclude: []string{"porta"}},
	"escritório":           {Terms: []string{"agenda", "pasta", "envelope"}, Exclude: []string{"porta"}},
	"estojos":              {Terms: []string{"estojo", "embalagem em kraft"}, Exclude: []string{"porta"}},
	"leques":               {Terms: []string{"leque"}, Exclude: []string{"porta"}},
	"linha pet":            {Terms: []string{"tigela para pet retratil", "tigela pet", "pet´s", "bebedouro pet", "pet`s"}, Exclude: []string{"porta"}},
	"moda":                 {Terms: []string{"viseira", "chapeu", "camisa", "camiseta", "roupa"}, Exclude: []string{"porta"}},
	"nécessaires":          {Terms: []string{"necessaire"}, Exclude: []string{"porta"}},
	"porta-cartão e carteira": {Terms: []string{"porta-cartao", "porta cartao", "carteira", "documento", "identidade", "porta documento", "porta identidade"}},
	"sacochilas":           {Terms: []string{"sacochila"}, Exclude: []string{"porta"}},
	"sacolas":              {Terms: []string{"sacola", "ecobag"}, Exclude: []string{"porta"}},
	"squeezes e garrafas":  {Terms: []string{"squeeze", "garrafa"}, Exclude: []string{"porta", "abridor de garrafa", "garrafa bebedouro"}},
	"tapetes":              {Terms: []string{"tapete"}, Exclude: []string{"porta"}},
}

// Matches aplica a regra ao nome normalizado do produto
func (r categoryFilterRule) Matches(normalizedName string) bool {
	if !containsAny(normalizedName, r.Terms) {
		return false
	}
	return !containsAny(normalizedName, r.Exclude)
}

// FilterByCategory filtra os produtos pela categoria do catálogo. Categorias
// sem regra dedicada caem no filtro genérico: o campo category do produto
// contém o termo, excluindo produtos com "porta" no nome.
func FilterByCategory(products []models.Product, categoryToken string) []models.Product {
	token := strings.ToLower(strings.TrimSpace(categoryToken))
	if token == "" {
		return products
	}

	rule, hasRule := categoryFilterRules[token]
	normalizedToken := NormalizeText(token)

	filtered := []models.Product{}
	for _, product := range products {
		normalizedName := NormalizeText(product.Name)
		if hasRule {
			if rule.Matches(normalizedName) {
				filtered = append(filtered, product)
			}
			continue
		}
		if strings.Contains(NormalizeText(product.Category), normalizedToken) &&
			!strings.Contains(normalizedName, "porta") {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
