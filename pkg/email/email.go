package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"matchdb-jobs-service/config"
)

// Sender delivers poke notification emails via SMTP.
type Sender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// PokeEmailData holds the data rendered into a poke notification.
type PokeEmailData struct {
	ToName         string
	FromName       string
	FromEmail      string
	SubjectContext string
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether SMTP credentials are present.
func (s *Sender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

const pokeEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Someone is interested in you on MatchDB</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>You received a poke</h1>
        </div>
        <div class="content">
            <p>Hi {{.ToName}},</p>
            <p>{{.FromName}} ({{.FromEmail}}) has shown interest in connecting with you
            regarding: <strong>{{.SubjectContext}}</strong></p>
            <p>Log in to MatchDB to respond.</p>
        </div>
        <div class="footer">
            <p>This notification was sent by MatchDB Jobs. Replies go directly to the sender.</p>
        </div>
    </div>
</body>
</html>`

var pokeTmpl = template.Must(template.New("poke").Parse(pokeEmailTemplate))

// SendPoke renders and sends the poke notification to the target address.
func (s *Sender) SendPoke(to string, data PokeEmailData) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email: SMTP not configured")
	}

	var body bytes.Buffer
	if err := pokeTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("email: render template: %w", err)
	}

	subject := fmt.Sprintf("%s is interested in you: %s", data.FromName, data.SubjectContext)
	msg := []byte("From: " + s.fromEmail + "\r\n" +
		"To: " + to + "\r\n" +
		"Reply-To: " + data.FromEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		body.String())

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("email: send failed: %w", err)
	}
	return nil
}
