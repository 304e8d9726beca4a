package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jridouane/vite-gourmand/models"
	"gopkg.in/gomail.v2"
)

// Mailer sends the notification raised by a new contact message. The contact
// controller treats a send failure as partial success: the message row is
// already persisted.
type Mailer interface {
	SendContactNotification(msg *models.ContactMessage) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(
			os.Getenv("SMTP_HOST"),
			port,
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASSWORD"),
		),
		from: os.Getenv("MAIL_FROM"),
		to:   os.Getenv("CONTACT_RECIPIENT"),
	}
}

func (m *SMTPMailer) SendContactNotification(msg *models.ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", "Contact Vite&Gourmand : "+msg.Title)
	mail.SetBody("text/plain", fmt.Sprintf(
		"Nouveau message de contact\n\nDe: %s\nTitre: %s\n\nMessage:\n%s\n",
		msg.Email, msg.Title, msg.Message,
	))

	return m.dialer.DialAndSend(mail)
}
