package services

import (
	"fmt"

	"deliwer-loyalty-system/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// MaxBatchSize caps recipients per mailer call; larger audiences are split.
const MaxBatchSize = 1000

// EmailBatch is one bounded send handed to the bulk mailer.
type EmailBatch struct {
	FromEmail    string
	FromName     string
	Subject      string
	TemplateID   string
	HTMLContent  string
	PlainContent string
	Recipients   []models.Customer
}

// BulkMailer delivers one batch and reports how many went out.
type BulkMailer interface {
	SendBatch(batch EmailBatch) (sent, failed int, err error)
}

// SendGridMailer sends batches through the SendGrid v3 mail API.
type SendGridMailer struct {
	APIKey string
}

func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{APIKey: apiKey}
}

func (m *SendGridMailer) SendBatch(batch EmailBatch) (int, int, error) {
	if len(batch.Recipients) == 0 {
		return 0, 0, nil
	}
	if len(batch.Recipients) > MaxBatchSize {
		return 0, len(batch.Recipients), fmt.Errorf("batch of %d exceeds cap of %d", len(batch.Recipients), MaxBatchSize)
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(batch.FromName, batch.FromEmail))
	message.Subject = batch.Subject

	for _, recipient := range batch.Recipients {
		p := mail.NewPersonalization()
		name := recipient.FirstName
		if recipient.LastName != "" {
			name = name + " " + recipient.LastName
		}
		p.AddTos(mail.NewEmail(name, recipient.Email))
		message.AddPersonalizations(p)
	}

	if batch.TemplateID != "" {
		message.SetTemplateID(batch.TemplateID)
	} else {
		if batch.PlainContent != "" {
			message.AddContent(mail.NewContent("text/plain", batch.PlainContent))
		}
		message.AddContent(mail.NewContent("text/html", batch.HTMLContent))
	}

	client := sendgrid.NewSendClient(m.APIKey)
	resp, err := client.Send(message)
	if err != nil {
		return 0, len(batch.Recipients), &models.CollaboratorError{Collaborator: "bulk mailer", Err: err}
	}
	if resp.StatusCode >= 400 {
		return 0, len(batch.Recipients), &models.CollaboratorError{
			Collaborator: "bulk mailer",
			Err:          fmt.Errorf("sendgrid returned %d", resp.StatusCode),
		}
	}
	return len(batch.Recipients), 0, nil
}
