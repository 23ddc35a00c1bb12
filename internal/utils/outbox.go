package utils

import (
	"encoding/json"
	"log"

	"natureza_back_end/internal/database"
)

// LogEmailQueued insere um registro na caixa de saída de e-mails e retorna o id.
// Tudo que sai por SMTP passa por aqui antes do envio, o que dá rastro para auditoria.
func LogEmailQueued(recipient, subject, template string, payload any) (int64, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		payloadJSON = []byte("{}")
	}

	var id int64
	err = database.DB.QueryRow(`
		INSERT INTO email_outbox (recipient, subject, template, payload, status, created_at)
		VALUES ($1, $2, $3, $4, 'queued', NOW())
		RETURNING id
	`, recipient, subject, template, string(payloadJSON)).Scan(&id)
	if err != nil {
		log.Printf("⚠️ Falha ao registrar e-mail na outbox: %v", err)
		return 0, err
	}

	return id, nil
}

// MarkEmailSent marca o registro da outbox como enviado
func MarkEmailSent(id int64, providerResponse string) {
	if id == 0 {
		return
	}
	_, err := database.DB.Exec(`
		UPDATE email_outbox
		SET status = 'sent', provider_response = $2, sent_at = NOW()
		WHERE id = $1
	`, id, providerResponse)
	if err != nil {
		log.Printf("⚠️ Falha ao atualizar outbox %d: %v", id, err)
	}
}

// MarkEmailError marca o registro da outbox com erro de envio
func MarkEmailError(id int64, providerResponse string) {
	if id == 0 {
		return
	}
	_, err := database.DB.Exec(`
		UPDATE email_outbox
		SET status = 'error', provider_response = $2
		WHERE id = $1
	`, id, providerResponse)
	if err != nil {
		log.Printf("⚠️ Falha ao atualizar outbox %d: %v", id, err)
	}
}
