package email

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/payease-hq/payease-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendPayslip(to, employeeName, companyName, period string, netSalary string, payslipPDF []byte) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type payslipEmailData struct {
	EmployeeName string
	CompanyName  string
	Period       string
	NetSalary    string
}

// SendPayslip sends the monthly payslip email with the PDF attached.
func (s *emailServiceImpl) SendPayslip(to, employeeName, companyName, period string, netSalary string, payslipPDF []byte) error {
	data := payslipEmailData{
		EmployeeName: employeeName,
		CompanyName:  companyName,
		Period:       period,
		NetSalary:    netSalary,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "payslip.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Payslip for %s", period)
	attachmentName := fmt.Sprintf("payslip-%s.pdf", period)
	return s.sendHTMLWithAttachment(to, subject, body.String(), attachmentName, payslipPDF)
}

func (s *emailServiceImpl) sendHTMLWithAttachment(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	var msg bytes.Buffer
	writer := multipart.NewWriter(&msg)

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", writer.Boundary())
	headers += "\r\n"

	htmlPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=\"UTF-8\""},
	})
	if err != nil {
		return fmt.Errorf("failed to build email body: %w", err)
	}
	if _, err := htmlPart.Write([]byte(htmlBody)); err != nil {
		return fmt.Errorf("failed to build email body: %w", err)
	}

	if len(attachment) > 0 {
		pdfPart, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {"application/pdf"},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", attachmentName)},
		})
		if err != nil {
			return fmt.Errorf("failed to attach payslip: %w", err)
		}
		encoded := base64.StdEncoding.EncodeToString(attachment)
		// RFC 2045 line length limit
		for len(encoded) > 76 {
			if _, err := pdfPart.Write([]byte(encoded[:76] + "\r\n")); err != nil {
				return fmt.Errorf("failed to attach payslip: %w", err)
			}
			encoded = encoded[76:]
		}
		if _, err := pdfPart.Write([]byte(encoded + "\r\n")); err != nil {
			return fmt.Errorf("failed to attach payslip: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize email: %w", err)
	}

	message := append([]byte(headers), msg.Bytes()...)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
