package catalog

import (
	"strings"

	"natureza_back_end/internal/models"
)

// Conjunto fechado de categorias do site
const (
	CategoryPapelaria      = "papelaria"
	CategoryAcessorios     = "acessorios"
	CategoryCasaEscritorio = "casa-escritorio"
	CategoryTextil         = "textil"
	CategoryEcologicos     = "ecologicos"
)

// pathRule mapeia trechos da categoria hierárquica do fornecedor (segmentos
// separados por |) para uma categoria do site. A ordem das regras importa:
// a primeira que casar vence.
type pathRule struct {
	Terms    []string
	Category string
}

var pathRules = []pathRule{
	{[]string{"canetas", "escritório", "escritorio", "blocos", "cadernos", "anotações"}, CategoryPapelaria},
	{[]string{"bolsas", "mochilas", "sacolas", "nécessaire"}, CategoryAcessorios},
	{[]string{"canecas", "garrafas", "copos", "xícaras"}, CategoryCasaEscritorio},
	{[]string{"malas", "maletas"}, CategoryTextil},
	{[]string{"chaveiros", "diversos"}, CategoryAcessorios},
}

// Palavras-chave de escritório e papelaria usadas na reclassificação
var officeKeywords = []string{
	"caneta", "canetas", "pen", "pens",
	"bloco", "blocos", "notepad", "notepads",
	"caderno", "cadernos", "notebook", "notebooks",
	"agenda", "agendas", "planner", "planners",
	"lápis", "lapis", "pencil", "pencils",
	"adesivo", "adesivos", "sticker", "stickers",
	"papel", "papeis", "paper",
	"escritório", "escritorio", "office",
	"papelaria", "stationery",
	"marca-texto", "marcador", "highlighter",
	"régua", "ruler",
	"borracha", "eraser",
	"grampeador", "stapler",
	"clips", "clipe",
	"post-it", "sticky notes",
}

// stageDecision carrega o resultado do estágio A e se ele é final.
// papelaria e casa-escritorio não podem ser sobrescritos pelo estágio B.
type stageDecision struct {
	Primary string
	Final   bool
}

// classifyPath é o estágio A: casa a categoria explícita do fornecedor
// contra as regras, em ordem. Sem categoria ou sem regra casando, ecologicos.
func classifyPath(categoria string) stageDecision {
	category := CategoryEcologicos
	if categoria != "" {
		categoryStr := strings.ToLower(categoria)
		for _, rule := range pathRules {
			if containsAny(categoryStr, rule.Terms) {
				category = rule.Category
				break
			}
		}
	}
	return stageDecision{
		Primary: category,
		Final:   category == CategoryPapelaria || category == CategoryCasaEscritorio,
	}
}

// hasOfficeKeyword é o estágio B: procura palavras de papelaria no texto
// combinado de título e descrição
func hasOfficeKeyword(titulo, descricao string) bool {
	combinedText := strings.ToLower(titulo) + " " + strings.ToLower(descricao)
	return containsAny(combinedText, officeKeywords)
}

// Classify decide a categoria do site para uma linha bruta do fornecedor.
// Primeiro a categoria explícita (estágio A); depois, se o resultado não for
// final, reclassifica como papelaria quando o texto contém palavras-chave de
// escritório.
func Classify(rec models.EcologicRecord) string {
	decision := classifyPath(rec.Categoria)
	if decision.Final {
		return decision.Primary
	}
	if hasOfficeKeyword(rec.Titulo, rec.Descricao) {
		return CategoryPapelaria
	}
	return decision.Primary
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
