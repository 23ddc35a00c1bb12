package models

import "time"

// Status possíveis de uma solicitação de orçamento
const (
	QuoteStatusPendente  = "pendente"
	QuoteStatusAprovado  = "aprovado"
	QuoteStatusRejeitado = "rejeitado"
	QuoteStatusConcluido = "concluido"
)

// CustomerInfo são os dados do cliente capturados no formulário de orçamento
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	CNPJ    string `json:"cnpj,omitempty"`
}

// QuoteItem é um item solicitado dentro de um orçamento
type QuoteItem struct {
	ProductID      string            `json:"productId,omitempty"`
	ProductName    string            `json:"productName"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unitPrice"`
	Customizations map[string]string `json:"customizations,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

// QuoteRequest é a solicitação de orçamento completa devolvida pela API
type QuoteRequest struct {
	ID             string       `json:"id"`
	Numero         string       `json:"numero_solicitacao"`
	CustomerInfo   CustomerInfo `json:"customerInfo"`
	Items          []QuoteItem  `json:"items"`
	Notes          string       `json:"notes,omitempty"`
	Status         string       `json:"status"`
	TotalEstimated float64      `json:"totalEstimated"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// CreateQuoteInput é o corpo aceito pelo POST /api/quotes
type CreateQuoteInput struct {
	CustomerData CustomerInfo `json:"customerData"`
	Items        []QuoteItem  `json:"items"`
	Notes        string       `json:"notes"`
}
