package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateConfirmationEmailHTML(t *testing.T) {
	html := GenerateConfirmationEmailHTML(ConfirmationTemplateData{
		ClientName:    "Maria Silva",
		ClientEmail:   "maria@empresa.com.br",
		ClientPhone:   "(27) 99999-0000",
		ClientCompany: "Empresa Verde",
	})

	assert.Contains(t, html, "Maria Silva")
	assert.Contains(t, html, "maria@empresa.com.br")
	assert.Contains(t, html, "Empresa Verde")
	assert.Contains(t, html, "RECEBEMOS SUA SOLICITAÇÃO DE ORÇAMENTO")

	// O gradiente do cabeçalho não pode sair corrompido pelo Sprintf
	assert.Contains(t, html, "linear-gradient(135deg, #2CB20B 0%, #25A009 100%)")
	assert.False(t, strings.Contains(html, "%!"), "verbo de formatação vazando no HTML")
}

func TestGenerateConfirmationEmailHTMLCamposOpcionais(t *testing.T) {
	html := GenerateConfirmationEmailHTML(ConfirmationTemplateData{
		ClientName:  "João",
		ClientEmail: "joao@teste.com",
		Subject:     "Orçamento de canetas",
		Message:     "Preciso de 500 unidades",
	})

	assert.Contains(t, html, "Orçamento de canetas")
	assert.Contains(t, html, "Preciso de 500 unidades")
}

func TestGenerateConfirmationEmailText(t *testing.T) {
	text := GenerateConfirmationEmailText(ConfirmationTemplateData{
		ClientName:  "João",
		ClientEmail: "joao@teste.com",
	})

	assert.Contains(t, text, "Olá João")
	assert.Contains(t, text, "joao@teste.com")
	assert.Contains(t, text, "Telefone: Não informado")
	assert.Contains(t, text, "Empresa: Não informado")
}
