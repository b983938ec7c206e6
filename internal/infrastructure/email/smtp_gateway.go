// Package email sends transactional mail (inspection reports, invoices,
// service confirmations) over SMTP.
package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/smtp"
	"os"
	"strconv"
	"time"

	"tms_gruas/internal/usecase/interfaces"
	"tms_gruas/pkg/retry"
)

var ErrEmailNotConfigured = errors.New("smtp gateway not configured")

// SendFunc matches smtp.SendMail; swapped in tests.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Config holds the SMTP connection settings, read from env at startup:
// SMTP_HOST, SMTP_PORT (default 587), SMTP_USER, SMTP_PASSWORD, SMTP_FROM.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func ConfigFromEnv() Config {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	return Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func (c Config) enabled() bool {
	return c.Host != "" && c.From != ""
}

// SMTPGateway implements IEmailGateway over plain SMTP with an injected
// retry policy for transient provider failures.
type SMTPGateway struct {
	cfg    Config
	policy retry.Policy
	send   SendFunc
}

var _ interfaces.IEmailGateway = (*SMTPGateway)(nil)

func NewSMTPGateway(cfg Config, policy retry.Policy) (*SMTPGateway, error) {
	if !cfg.enabled() {
		log.Printf("[email][gateway] missing SMTP_HOST/SMTP_FROM")
		return nil, ErrEmailNotConfigured
	}
	return &SMTPGateway{cfg: cfg, policy: policy, send: smtp.SendMail}, nil
}

func (g *SMTPGateway) SendInspectionEmail(ctx context.Context, in interfaces.InspectionEmailInput) error {
	subject := fmt.Sprintf("Inspeccion pre-servicio - Folio %d", in.ServiceFolio)
	body := fmt.Sprintf(
		"Estimado(a) %s:\n\nAdjuntamos el reporte de inspeccion del servicio folio %d, programado para el %s, realizado por %s.\n\nSaludos,\nEquipo de operaciones",
		in.ClientName, in.ServiceFolio, in.ServiceDate.Format("02-01-2006"), in.OperatorName,
	)
	fileName := in.PDFFileName
	if fileName == "" {
		fileName = fmt.Sprintf("inspeccion-%d.pdf", in.ServiceFolio)
	}
	return g.deliver(ctx, in.To, subject, body, fileName, in.PDF)
}

func (g *SMTPGateway) SendInvoiceEmail(ctx context.Context, in interfaces.InvoiceEmailInput) error {
	subject := fmt.Sprintf("Factura %d", in.InvoiceFolio)
	body := fmt.Sprintf(
		"Estimado(a) %s:\n\nSe ha emitido la factura folio %d por un total de $%.0f, con vencimiento el %s.\n\nSaludos,\nEquipo de facturacion",
		in.ClientName, in.InvoiceFolio, in.Total, in.DueDate.Format("02-01-2006"),
	)
	return g.deliver(ctx, in.To, subject, body, "", nil)
}

func (g *SMTPGateway) SendServiceConfirmation(ctx context.Context, in interfaces.ServiceConfirmationInput) error {
	subject := fmt.Sprintf("Servicio agendado - Folio %d", in.ServiceFolio)
	body := fmt.Sprintf(
		"Estimado(a) %s:\n\nSu servicio folio %d fue agendado para el %s.\nOrigen: %s\nDestino: %s\n\nSaludos,\nEquipo de operaciones",
		in.ClientName, in.ServiceFolio, in.ServiceDate.Format("02-01-2006"), in.Origin, in.Destination,
	)
	return g.deliver(ctx, in.To, subject, body, "", nil)
}

func (g *SMTPGateway) deliver(ctx context.Context, to, subject, body, attachmentName string, attachment []byte) error {
	if to == "" {
		return errors.New("missing recipient")
	}
	msg := buildMessage(g.cfg.From, to, subject, body, attachmentName, attachment)

	addr := fmt.Sprintf("%s:%d", g.cfg.Host, g.cfg.Port)
	var auth smtp.Auth
	if g.cfg.User != "" {
		auth = smtp.PlainAuth("", g.cfg.User, g.cfg.Password, g.cfg.Host)
	}

	err := g.policy.Do(ctx, func(context.Context) error {
		return g.send(addr, auth, g.cfg.From, []string{to}, msg)
	})
	if err != nil {
		log.Printf("[email][gateway] send failed to=%s subject=%q err=%v", to, subject, err)
		return err
	}
	log.Printf("[email][gateway] send success to=%s subject=%q attachment=%v", to, subject, attachmentName != "")
	return nil
}

// buildMessage assembles an RFC 2045 message; with an attachment it becomes
// multipart/mixed with the PDF base64-encoded.
func buildMessage(from, to, subject, body, attachmentName string, attachment []byte) []byte {
	var buf bytes.Buffer
	write := func(format string, args ...any) { fmt.Fprintf(&buf, format+"\r\n", args...) }

	write("From: %s", from)
	write("To: %s", to)
	write("Subject: %s", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0")

	if len(attachment) == 0 {
		write("Content-Type: text/plain; charset=utf-8")
		write("")
		buf.WriteString(body)
		return buf.Bytes()
	}

	const boundary = "tms-gruas-mixed"
	write("Content-Type: multipart/mixed; boundary=%s", boundary)
	write("")
	write("--%s", boundary)
	write("Content-Type: text/plain; charset=utf-8")
	write("")
	write("%s", body)
	write("--%s", boundary)
	write("Content-Type: application/pdf; name=%q", attachmentName)
	write("Content-Disposition: attachment; filename=%q", attachmentName)
	write("Content-Transfer-Encoding: base64")
	write("")

	encoded := base64.StdEncoding.EncodeToString(attachment)
	for len(encoded) > 76 {
		write("%s", encoded[:76])
		encoded = encoded[76:]
	}
	write("%s", encoded)
	write("--%s--", boundary)
	return buf.Bytes()
}
