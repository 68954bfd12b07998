package notify

import (
	"fmt"
	"net/smtp"
)

// EmailSender delivers over plain SMTP, the same wiring the business
// already uses for its mailbox provider.
type EmailSender struct {
	from     string
	fromName string
	host     string
	port     string
	user     string
	pass     string
}

func NewEmailSender(from, fromName, host, port, user, pass string) *EmailSender {
	return &EmailSender{
		from:     from,
		fromName: fromName,
		host:     host,
		port:     port,
		user:     user,
		pass:     pass,
	}
}

func (s *EmailSender) Send(to, subject, body string) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", to)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "\r\n" + body

	var auth smtp.Auth
	if s.user != "" && s.pass != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	addr := s.host + ":" + s.port
	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message))
}
