package mail

import (
	"fmt"
	"net/smtp"
	"os"
)

// Sender delivers a message to a single recipient.
type Sender interface {
	Send(to string, subject string, body string) error
}

// SMTPSender sends through the SMTP relay configured in the
// environment (SMTP_HOST, SMTP_PORT, SMTP_FROM, SMTP_PASSWORD).
type SMTPSender struct{}

func (SMTPSender) Send(to string, subject string, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", from, to, subject, body))

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}
