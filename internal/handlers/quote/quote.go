package quote

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"natureza_back_end/internal/database"
	"natureza_back_end/internal/models"
	"natureza_back_end/internal/utils"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validQuoteStatuses = []string{
	models.QuoteStatusPendente,
	models.QuoteStatusAprovado,
	models.QuoteStatusRejeitado,
	models.QuoteStatusConcluido,
}

func newRequestID() string {
	token := strings.ToLower(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), token)
}

func newQuoteNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("SOL-%d-%s", time.Now().UnixMilli(), token)
}

// CreateQuote cria uma solicitação de orçamento a partir do formulário do site
func CreateQuote(c *gin.Context) {
	requestID := newRequestID()
	log.Printf("[%s] 🚀 Iniciando criação de orçamento", requestID)

	var input models.CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Corpo da requisição inválido",
			"code":    "INVALID_BODY",
		})
		return
	}

	// Validação básica
	if input.CustomerData == (models.CustomerInfo{}) {
		log.Printf("[%s] ⚠️ Validação: customerData não fornecido", requestID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Informações do cliente são obrigatórias",
			"code":    "MISSING_CUSTOMER_DATA",
		})
		return
	}

	if len(strings.TrimSpace(input.CustomerData.Name)) < 2 {
		log.Printf("[%s] ⚠️ Validação: nome inválido", requestID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Nome do cliente deve ter pelo menos 2 caracteres",
			"code":    "INVALID_NAME",
		})
		return
	}

	if !emailRegex.MatchString(input.CustomerData.Email) {
		log.Printf("[%s] ⚠️ Validação: email inválido", requestID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email válido é obrigatório",
			"code":    "INVALID_EMAIL",
		})
		return
	}

	if len(input.Items) == 0 {
		log.Printf("[%s] ⚠️ Validação: itens inválidos", requestID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Pelo menos um item deve ser incluído no orçamento",
			"code":    "NO_ITEMS",
		})
		return
	}

	for i, item := range input.Items {
		if item.Quantity <= 0 {
			log.Printf("[%s] ⚠️ Validação: quantidade inválida no item %d", requestID, i)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Item %d: quantidade deve ser maior que zero", i+1),
				"code":    "INVALID_QUANTITY",
			})
			return
		}
		if strings.TrimSpace(item.ProductName) == "" {
			log.Printf("[%s] ⚠️ Validação: nome do produto ausente no item %d", requestID, i)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Item %d: nome do produto é obrigatório", i+1),
				"code":    "MISSING_PRODUCT_NAME",
			})
			return
		}
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(input.CustomerData.Email))

	// 1. Buscar ou criar cliente por email
	var clienteID string
	err := database.DB.QueryRowContext(ctx, `
		SELECT id FROM usuarios_clientes WHERE email = $1
	`, email).Scan(&clienteID)

	switch {
	case err == sql.ErrNoRows:
		err = database.DB.QueryRowContext(ctx, `
			INSERT INTO usuarios_clientes (nome, email, telefone, empresa)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, strings.TrimSpace(input.CustomerData.Name), email,
			input.CustomerData.Phone, input.CustomerData.Company).Scan(&clienteID)
		if err != nil {
			log.Printf("[%s] ❌ Erro ao criar cliente: %v", requestID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Erro ao processar dados do cliente",
				"code":    "CLIENT_ERROR",
			})
			return
		}
		log.Printf("[%s] ✅ Novo cliente criado: %s", requestID, clienteID)
	case err != nil:
		log.Printf("[%s] ❌ Erro ao buscar cliente: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao processar dados do cliente",
			"code":    "CLIENT_ERROR",
		})
		return
	default:
		log.Printf("[%s] ✅ Cliente existente encontrado: %s", requestID, clienteID)
	}

	// 2. Criar a solicitação
	numero := newQuoteNumber()
	var (
		solicitacaoID string
		createdAt     time.Time
	)
	err = database.DB.QueryRowContext(ctx, `
		INSERT INTO solicitacao_orcamentos (user_id, numero_solicitacao, observacoes, status)
		VALUES ($1, $2, $3, $4)
		RETURNING solicitacao_id, created_at
	`, clienteID, numero, strings.TrimSpace(input.Notes), models.QuoteStatusPendente).
		Scan(&solicitacaoID, &createdAt)
	if err != nil {
		log.Printf("[%s] ❌ Erro ao criar solicitação: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao criar solicitação de orçamento",
			"code":    "QUOTE_CREATION_ERROR",
		})
		return
	}
	log.Printf("[%s] ✅ Solicitação criada: %s (%s)", requestID, solicitacaoID, numero)

	// 3. Criar os itens da solicitação
	for _, item := range input.Items {
		personalizacoes := "{}"
		if len(item.Customizations) > 0 {
			if data, err := json.Marshal(item.Customizations); err == nil {
				personalizacoes = string(data)
			}
		}

		_, err = database.DB.ExecContext(ctx, `
			INSERT INTO products_solicitacao
				(solicitacao_id, produto_nome, quantidade, valor_unitario_estimado, subtotal_estimado, personalizacoes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, solicitacaoID, item.ProductName, item.Quantity, item.UnitPrice,
			float64(item.Quantity)*item.UnitPrice, personalizacoes)
		if err != nil {
			log.Printf("[%s] ❌ Erro ao criar itens: %v", requestID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Erro ao criar itens da solicitação",
			})
			return
		}
	}
	log.Printf("[%s] ✅ Itens criados: %d", requestID, len(input.Items))

	quote := models.QuoteRequest{
		ID:           solicitacaoID,
		Numero:       numero,
		CustomerInfo: input.CustomerData,
		Items:        input.Items,
		Notes:        strings.TrimSpace(input.Notes),
		Status:       models.QuoteStatusPendente,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	for _, item := range input.Items {
		quote.TotalEstimated += float64(item.Quantity) * item.UnitPrice
	}

	// 4. E-mail de confirmação em background, a resposta não espera o SMTP
	go utils.SendQuoteConfirmationEmail(utils.ConfirmationTemplateData{
		ClientName:    input.CustomerData.Name,
		ClientEmail:   email,
		ClientPhone:   input.CustomerData.Phone,
		ClientCompany: input.CustomerData.Company,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    quote,
		"message": "Solicitação de orçamento criada com sucesso",
	})
}

// fetchQuoteItems carrega os itens de uma solicitação
func fetchQuoteItems(solicitacaoID string) ([]models.QuoteItem, error) {
	rows, err := database.DB.Query(`
		SELECT COALESCE(produto_nome, 'Produto'),
		       COALESCE(quantidade, 1),
		       COALESCE(valor_unitario_estimado, 0),
		       COALESCE(personalizacoes::text, '{}')
		FROM products_solicitacao
		WHERE solicitacao_id = $1
	`, solicitacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.QuoteItem{}
	for rows.Next() {
		var (
			item     models.QuoteItem
			rawCusto string
		)
		if err := rows.Scan(&item.ProductName, &item.Quantity, &item.UnitPrice, &rawCusto); err != nil {
			return nil, err
		}
		if rawCusto != "" && rawCusto != "{}" {
			json.Unmarshal([]byte(rawCusto), &item.Customizations)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const quoteSelectColumns = `
	s.solicitacao_id,
	COALESCE(s.numero_solicitacao, ''),
	COALESCE(s.observacoes, ''),
	COALESCE(s.status, 'pendente'),
	s.created_at,
	COALESCE(s.updated_at, s.created_at),
	COALESCE(u.nome, ''),
	COALESCE(u.email, ''),
	COALESCE(u.telefone, ''),
	COALESCE(u.empresa, '')`

func scanQuote(row interface{ Scan(...any) error }) (models.QuoteRequest, error) {
	var q models.QuoteRequest
	err := row.Scan(
		&q.ID, &q.Numero, &q.Notes, &q.Status, &q.CreatedAt, &q.UpdatedAt,
		&q.CustomerInfo.Name, &q.CustomerInfo.Email,
		&q.CustomerInfo.Phone, &q.CustomerInfo.Company,
	)
	return q, err
}

// ListQuotes lista as solicitações com filtro de status e paginação
func ListQuotes(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	order := "DESC"
	if sortOrder == "asc" {
		order = "ASC"
	}

	args := []any{}
	where := ""
	if status != "" && status != "all" {
		where = "WHERE s.status = $1"
		args = append(args, status)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM solicitacao_orcamentos s " + where
	if err := database.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		log.Println("❌ Erro ao contar orçamentos:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao buscar orçamentos",
		})
		return
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM solicitacao_orcamentos s
		LEFT JOIN usuarios_clientes u ON u.id = s.user_id
		%s
		ORDER BY s.created_at %s
		LIMIT %d OFFSET %d
	`, quoteSelectColumns, where, order, limit, offset)

	rows, err := database.DB.Query(query, args...)
	if err != nil {
		log.Println("❌ Erro ao buscar orçamentos:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao buscar orçamentos",
		})
		return
	}
	defer rows.Close()

	quotes := []models.QuoteRequest{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			log.Println("❌ Erro ao ler orçamento:", err)
			continue
		}
		quotes = append(quotes, q)
	}

	// Itens de cada solicitação
	for i := range quotes {
		items, err := fetchQuoteItems(quotes[i].ID)
		if err != nil {
			log.Println("⚠️ Erro ao buscar itens do orçamento:", err)
			continue
		}
		quotes[i].Items = items
		for _, item := range items {
			quotes[i].TotalEstimated += float64(item.Quantity) * item.UnitPrice
		}
	}

	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"quotes": quotes,
			"pagination": models.Pagination{
				CurrentPage:  page,
				TotalPages:   totalPages,
				TotalItems:   total,
				ItemsPerPage: limit,
				HasNextPage:  page < totalPages,
				HasPrevPage:  page > 1,
			},
		},
	})
}

// GetQuoteByID busca uma solicitação por ID
func GetQuoteByID(c *gin.Context) {
	id := c.Param("id")

	query := fmt.Sprintf(`
		SELECT %s
		FROM solicitacao_orcamentos s
		LEFT JOIN usuarios_clientes u ON u.id = s.user_id
		WHERE s.solicitacao_id = $1
	`, quoteSelectColumns)

	quote, err := scanQuote(database.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Orçamento não encontrado",
		})
		return
	}
	if err != nil {
		log.Println("❌ Erro ao buscar orçamento:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	items, err := fetchQuoteItems(id)
	if err != nil {
		log.Println("⚠️ Erro ao buscar itens do orçamento:", err)
	}
	quote.Items = items
	for _, item := range items {
		quote.TotalEstimated += float64(item.Quantity) * item.UnitPrice
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    quote,
	})
}

// UpdateQuoteStatus atualiza o status de uma solicitação
func UpdateQuoteStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !isValidQuoteStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Status inválido. Use: pendente, aprovado, rejeitado ou concluido",
		})
		return
	}

	result, err := database.DB.Exec(`
		UPDATE solicitacao_orcamentos
		SET status = $2, updated_at = NOW()
		WHERE solicitacao_id = $1
	`, id, input.Status)
	if err != nil {
		log.Println("❌ Erro ao atualizar status do orçamento:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Orçamento não encontrado",
		})
		return
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM solicitacao_orcamentos s
		LEFT JOIN usuarios_clientes u ON u.id = s.user_id
		WHERE s.solicitacao_id = $1
	`, quoteSelectColumns)

	quote, err := scanQuote(database.DB.QueryRow(query, id))
	if err != nil {
		log.Println("❌ Erro ao buscar orçamento atualizado:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	items, _ := fetchQuoteItems(id)
	quote.Items = items

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    quote,
		"message": "Status do orçamento atualizado com sucesso",
	})
}

// DeleteQuote exclui uma solicitação e seus itens
func DeleteQuote(c *gin.Context) {
	id := c.Param("id")

	query := fmt.Sprintf(`
		SELECT %s
		FROM solicitacao_orcamentos s
		LEFT JOIN usuarios_clientes u ON u.id = s.user_id
		WHERE s.solicitacao_id = $1
	`, quoteSelectColumns)

	quote, err := scanQuote(database.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Orçamento não encontrado",
		})
		return
	}
	if err != nil {
		log.Println("❌ Erro ao buscar orçamento:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	items, _ := fetchQuoteItems(id)
	quote.Items = items

	// Excluir os itens primeiro, por causa da foreign key
	if _, err := database.DB.Exec(`DELETE FROM products_solicitacao WHERE solicitacao_id = $1`, id); err != nil {
		log.Println("❌ Erro ao excluir itens do orçamento:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao excluir itens do orçamento",
		})
		return
	}

	if _, err := database.DB.Exec(`DELETE FROM solicitacao_orcamentos WHERE solicitacao_id = $1`, id); err != nil {
		log.Println("❌ Erro ao excluir orçamento:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro ao excluir orçamento",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    quote,
		"message": "Orçamento excluído com sucesso",
	})
}

// GetQuoteStats devolve o resumo das solicitações para o dashboard
func GetQuoteStats(c *gin.Context) {
	var total, pendentes, aprovados, rejeitados, concluidos int
	err := database.DB.QueryRow(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pendente'),
		       COUNT(*) FILTER (WHERE status = 'aprovado'),
		       COUNT(*) FILTER (WHERE status = 'rejeitado'),
		       COUNT(*) FILTER (WHERE status = 'concluido')
		FROM solicitacao_orcamentos
	`).Scan(&total, &pendentes, &aprovados, &rejeitados, &concluidos)
	if err != nil {
		log.Println("❌ Erro ao buscar estatísticas:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	// Últimas 5 solicitações
	rows, err := database.DB.Query(`
		SELECT s.solicitacao_id,
		       COALESCE(s.status, 'pendente'),
		       s.created_at,
		       COALESCE(u.nome, ''),
		       COALESCE(u.empresa, '')
		FROM solicitacao_orcamentos s
		LEFT JOIN usuarios_clientes u ON u.id = s.user_id
		ORDER BY s.created_at DESC
		LIMIT 5
	`)
	if err != nil {
		log.Println("❌ Erro ao buscar solicitações recentes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}
	defer rows.Close()

	type recentQuote struct {
		ID           string    `json:"id"`
		CustomerName string    `json:"customerName"`
		Company      string    `json:"company"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"createdAt"`
	}

	recent := []recentQuote{}
	for rows.Next() {
		var q recentQuote
		if err := rows.Scan(&q.ID, &q.Status, &q.CreatedAt, &q.CustomerName, &q.Company); err != nil {
			continue
		}
		recent = append(recent, q)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"summary": gin.H{
				"totalQuotes":     total,
				"pendingQuotes":   pendentes,
				"approvedQuotes":  aprovados,
				"rejectedQuotes":  rejeitados,
				"completedQuotes": concluidos,
			},
			"recentQuotes": recent,
		},
	})
}

func isValidQuoteStatus(status string) bool {
	for _, s := range validQuoteStatuses {
		if s == status {
			return true
		}
	}
	return false
}
