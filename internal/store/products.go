package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"natureza_back_end/internal/database"
	"natureza_back_end/internal/models"
)

const ecologicColumns = `id,
	COALESCE(codigo, ''),
	COALESCE(titulo, ''),
	COALESCE(descricao, ''),
	COALESCE(categoria, ''),
	COALESCE(img_0, ''),
	COALESCE(img_1, ''),
	COALESCE(img_2, ''),
	COALESCE(variacoes::text, '[]'),
	COALESCE(preco::text, ''),
	COALESCE(status, ''),
	COALESCE(promocao::text, ''),
	COALESCE(altura::text, ''),
	COALESCE(largura::text, ''),
	COALESCE(comprimento::text, ''),
	COALESCE(peso::text, ''),
	COALESCE(cor_web_principal, '')`

// FetchActiveRecords busca todas as linhas ativas da ecologic_products_site.
// A filtragem/ordenação fica toda em memória: várias regras do catálogo
// dependem de campos derivados que não existem na tabela.
func FetchActiveRecords(ctx context.Context) ([]models.EcologicRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM ecologic_products_site WHERE status_active = true`, ecologicColumns)

	rows, err := database.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos ecológicos: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// FetchRecords busca as primeiras linhas da tabela, sem filtro de ativo,
// usado pela vitrine simples da home
func FetchRecords(ctx context.Context, limit int) ([]models.EcologicRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM ecologic_products_site ORDER BY id LIMIT $1`, ecologicColumns)

	rows, err := database.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos ecológicos: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// FetchHighlightedRecords junta produtos_destaque com os produtos ativos
func FetchHighlightedRecords(ctx context.Context, limit int) ([]models.EcologicRecord, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM produtos_destaque d
		JOIN ecologic_products_site p ON p.id = d.id_produto
		WHERE p.status_active = true
		LIMIT $1`, ecologicColumnsQualified("p"))

	rows, err := database.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos em destaque: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// DistinctCategories devolve as categorias brutas distintas do fornecedor
func DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := database.DB.QueryContext(ctx,
		`SELECT DISTINCT TRIM(categoria) FROM ecologic_products_site
		 WHERE categoria IS NOT NULL AND TRIM(categoria) <> ''`)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar categorias: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var categoria string
		if err := rows.Scan(&categoria); err != nil {
			return nil, err
		}
		categories = append(categories, categoria)
	}
	return categories, rows.Err()
}

func ecologicColumnsQualified(alias string) string {
	return fmt.Sprintf(`%[1]s.id,
	COALESCE(%[1]s.codigo, ''),
	COALESCE(%[1]s.titulo, ''),
	COALESCE(%[1]s.descricao, ''),
	COALESCE(%[1]s.categoria, ''),
	COALESCE(%[1]s.img_0, ''),
	COALESCE(%[1]s.img_1, ''),
	COALESCE(%[1]s.img_2, ''),
	COALESCE(%[1]s.variacoes::text, '[]'),
	COALESCE(%[1]s.preco::text, ''),
	COALESCE(%[1]s.status, ''),
	COALESCE(%[1]s.promocao::text, ''),
	COALESCE(%[1]s.altura::text, ''),
	COALESCE(%[1]s.largura::text, ''),
	COALESCE(%[1]s.comprimento::text, ''),
	COALESCE(%[1]s.peso::text, ''),
	COALESCE(%[1]s.cor_web_principal, '')`, alias)
}

func scanRecords(rows *sql.Rows) ([]models.EcologicRecord, error) {
	var records []models.EcologicRecord
	for rows.Next() {
		var rec models.EcologicRecord
		var variacoesJSON string

		err := rows.Scan(
			&rec.ID, &rec.Codigo, &rec.Titulo, &rec.Descricao, &rec.Categoria,
			&rec.Img0, &rec.Img1, &rec.Img2, &variacoesJSON,
			&rec.Preco, &rec.Status, &rec.Promocao,
			&rec.Altura, &rec.Largura, &rec.Comprimento, &rec.Peso,
			&rec.CorWebPrincipal,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}

		// Variações chegam como jsonb; linhas com JSON inválido ficam sem variações
		if err := json.Unmarshal([]byte(variacoesJSON), &rec.Variacoes); err != nil {
			rec.Variacoes = nil
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}
