package utils

import (
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

const (
	senderName  = "Natureza Brindes"
	senderEmail = "naturezabrindes@naturezabrindes.com.br"
)

// SendEmail envia um e-mail transacional via relay SMTP da Brevo
func SendEmail(to, toName, subject, htmlBody, textBody string) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(senderName, senderEmail); err != nil {
		return err
	}
	if err := msg.AddToFormat(toName, to); err != nil {
		return err
	}
	if err := msg.ReplyTo(senderEmail); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	if textBody != "" {
		msg.AddAlternativeString(mail.TypeTextPlain, textBody)
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp-relay.brevo.com"
	}

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Enviando e-mail para", to)
	return client.DialAndSend(msg)
}

// SendQuoteConfirmationEmail envia a confirmação de solicitação de orçamento.
// Melhor esforço: a falha é registrada no outbox e nunca derruba a requisição
// que originou o envio.
func SendQuoteConfirmationEmail(customer ConfirmationTemplateData) {
	subject := "RECEBEMOS SUA SOLICITAÇÃO DE ORÇAMENTO - Natureza Brindes"
	if customer.Subject != "" {
		subject = customer.Subject
	}

	outboxID, err := LogEmailQueued(customer.ClientEmail, subject, "quote_confirmation", customer)
	if err != nil {
		log.Println("⚠️ Falha ao registrar e-mail no outbox:", err)
	}

	html := GenerateConfirmationEmailHTML(customer)
	text := GenerateConfirmationEmailText(customer)

	if err := SendEmail(customer.ClientEmail, customer.ClientName, subject, html, text); err != nil {
		log.Println("❌ Falha ao enviar e-mail de confirmação:", err)
		MarkEmailError(outboxID, err.Error())
		return
	}

	log.Println("📧 E-mail de confirmação enviado:", customer.ClientEmail)
	MarkEmailSent(outboxID, "smtp: mensagem aceita pelo relay")
}
