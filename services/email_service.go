package services

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/Dosada05/championship/config"
)

const championshipName = "B&H FC26 Championship"

//go:embed templates/*.html
var emailTemplates embed.FS

var welcomeTemplate = template.Must(template.ParseFS(emailTemplates, "templates/welcome_email.html"))

// Mailer sends the messages players receive.
type Mailer interface {
	SendWelcomeEmail(to, name, code string) error
}

// NewMailer returns an SMTP mailer, or one that only logs when SMTP is off.
func NewMailer(cfg config.SMTPConfig, publicURL string, logger *slog.Logger) Mailer {
	if !cfg.Enabled() {
		return &logMailer{logger: logger}
	}
	return NewEmailService(cfg, publicURL)
}

type EmailService struct {
	cfg       config.SMTPConfig
	publicURL string
}

func NewEmailService(cfg config.SMTPConfig, publicURL string) *EmailService {
	return &EmailService{cfg: cfg, publicURL: strings.TrimRight(publicURL, "/")}
}

func (s *EmailService) SendEmail(to []string, subject string, body string) error {
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	msg := buildMessage(s.cfg.From, to, subject, body)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsconfig := &tls.Config{ServerName: s.cfg.Host}

	var client *smtp.Client
	if s.cfg.Port == 465 {
		// Прямое TLS-соединение (обычно порт 465)
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("smtp tls dial: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return fmt.Errorf("smtp client: %w", err)
		}
	} else {
		// STARTTLS (обычно порт 587)
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("smtp dial: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	defer client.Quit()

	if s.cfg.Username != "" {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("smtp write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp close DATA: %w", err)
	}
	return nil
}

func (s *EmailService) SendWelcomeEmail(to, name, code string) error {
	body, err := renderWelcome(name, code, s.publicURL)
	if err != nil {
		return err
	}
	return s.SendEmail([]string{to}, welcomeSubject(), body)
}

type welcomeData struct {
	Name         string
	Championship string
	Code         string
	TableLink    string
}

func welcomeSubject() string {
	return "Welcome to the " + championshipName + "!"
}

func renderWelcome(name, code, publicURL string) (string, error) {
	data := welcomeData{
		Name:         name,
		Championship: championshipName,
		Code:         strings.ToUpper(code),
		TableLink:    publicURL + "/table",
	}
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render welcome email: %w", err)
	}
	return body.String(), nil
}

func buildMessage(from string, to []string, subject, body string) []byte {
	var b bytes.Buffer
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return b.Bytes()
}

// logMailer stands in when SMTP is not configured.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) SendWelcomeEmail(to, _, code string) error {
	m.logger.Info("smtp disabled, welcome email not sent", slog.String("to", to), slog.String("code", strings.ToUpper(code)))
	return nil
}
