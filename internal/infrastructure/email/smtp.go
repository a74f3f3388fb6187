package email

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

// SMTPEmailService delivers the optional email side channel for ticket
// replies and account actions. Bodies arrive as plain text; the HTML
// alternative is rendered from them as Markdown.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendTicketEmail notifies a submitter of a staff reply on their ticket.
func (s *SMTPEmailService) SendTicketEmail(to, ticketNumber string, ticketID uint, body, staffName string) error {
	subject := fmt.Sprintf("New reply to your ticket %s", ticketNumber)
	ticketURL := fmt.Sprintf("%s/support/tickets/%d", s.config.BaseURL, ticketID)

	replier := "Our support team"
	if staffName != "" {
		replier = staffName
	}

	plainBody := fmt.Sprintf(`%s replied to your ticket %s:

%s

View the full conversation:
%s
`, replier, ticketNumber, body, ticketURL)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New reply to your ticket %s</h2>
			<p>%s replied:</p>
			<blockquote>%s</blockquote>
			<p><a href="%s">View the full conversation</a></p>
		</body>
		</html>
	`, ticketNumber, replier, renderMarkdown(body), ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendAccountActionEmail notifies a user that a moderation action was
// applied to their account.
func (s *SMTPEmailService) SendAccountActionEmail(to, action, reason string) error {
	subject := "Action taken on your account"

	plainBody := fmt.Sprintf(`An action has been taken on your account: %s

Reason:
%s

If you believe this was a mistake, you may submit an appeal from your account page.
`, action, reason)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Action taken on your account</h2>
			<p>An action has been taken on your account: <strong>%s</strong></p>
			<p>Reason:</p>
			<blockquote>%s</blockquote>
			<p>If you believe this was a mistake, you may submit an appeal from your account page.</p>
		</body>
		</html>
	`, action, renderMarkdown(reason))

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// renderMarkdown converts a stored plain-text body to HTML for the email
// alternative part. On render failure the raw text is used as-is.
func renderMarkdown(body string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return body
	}
	return buf.String()
}
