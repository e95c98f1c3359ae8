package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"europlast-backend/config"
	"europlast-backend/internal/domain"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("email service is not configured")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	send      sendFunc
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SubmissionID string
	ReceivedAt   string
	SenderName   string
	SenderEmail  string
	Company      string
	Phone        string
	Subject      string
	Message      string
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		send:      smtp.SendMail,
	}
}

var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #b91c1c; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #b91c1c; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div>{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            {{if .Company}}<div class="field">
                <div class="label">Company:</div>
                <div>{{.Company}}</div>
            </div>{{end}}
            <div class="field">
                <div class="label">Phone:</div>
                <div>{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div>{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from the Europlast contact form on {{.ReceivedAt}} (ref {{.SubmissionID}}).</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`))

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Dispatch mails the submission. The SMTP exchange cannot be interrupted,
// so on context expiry Dispatch returns early and the send finishes in
// the background.
func (s *EmailService) Dispatch(ctx context.Context, sub *domain.ContactSubmission) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	req := sub.Request
	msg, err := s.buildMessage(ContactEmailData{
		SubmissionID: sub.ID,
		ReceivedAt:   sub.ReceivedAt.UTC().Format(time.RFC1123),
		SenderName:   req.Name(),
		SenderEmail:  req.Email(),
		Company:      req.Company(),
		Phone:        req.Phone(),
		Subject:      req.Subject(),
		Message:      req.Message(),
	})
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.sendMessage(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *EmailService) buildMessage(data ContactEmailData) ([]byte, error) {
	var body bytes.Buffer
	if err := contactEmailTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := mime.QEncoding.Encode("utf-8", "Contact Form: "+stripHeaderBreaks(data.Subject))

	msg := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		stripHeaderBreaks(data.SenderEmail),
		subject,
		body.String(),
	)
	return []byte(msg), nil
}

func (s *EmailService) sendMessage(msg []byte) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// stripHeaderBreaks prevents header injection through user input.
func stripHeaderBreaks(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
