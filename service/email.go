package service

import (
	"fmt"
	"io"

	"buget/config"

	"gopkg.in/gomail.v2"
)

// EmailService sends outbound mail through the configured SMTP server.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendDataExport mails the user a JSON copy of their records before the
// account is deleted.
func (s *EmailService) SendDataExport(toEmail, username string, exportJSON []byte) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("serviciul de email nu este activat")
	}

	body := fmt.Sprintf(
		"Salut %s,\n\n"+
			"Ai primit aceasta copie a datelor tale inainte de stergerea contului "+
			"din aplicatia de buget. Datele complete sunt atasate in fisierul JSON.",
		username,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Copie date - aplicatie buget")
	m.SetBody("text/plain", body)
	m.Attach(
		fmt.Sprintf("date_%s.json", username),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(exportJSON)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/json"}}),
	)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("trimiterea emailului a esuat: %w", err)
	}
	return nil
}
