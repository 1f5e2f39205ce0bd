package utils

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"greenstech/config"
)

// SendBulkEmail sends one message to every recipient. Recipients are only
// placed on the SMTP envelope, never in a header, so no recipient sees
// another's address. attachmentPath may be empty.
func SendBulkEmail(recipients []string, subject, htmlBody, attachmentPath string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients")
	}

	msg, err := buildMessage(subject, htmlBody, attachmentPath)
	if err != nil {
		return err
	}

	return sendMail(recipients, msg)
}

// buildMessage assembles the MIME message, multipart when a file is attached
func buildMessage(subject, htmlBody, attachmentPath string) ([]byte, error) {
	cfg := config.AppConfig

	var b strings.Builder
	fmt.Fprintf(&b, "From: Greens Tech Admin <%s>\r\n", cfg.SMTPFrom)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if attachmentPath == "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(htmlBody)
		return []byte(b.String()), nil
	}

	data, err := os.ReadFile(attachmentPath)
	if err != nil {
		return nil, err
	}

	const boundary = "greenstech-mail-boundary"
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	fmt.Fprintf(&b, "Content-Type: application/octet-stream; name=%q\r\n", filepath.Base(attachmentPath))
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", filepath.Base(attachmentPath))

	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	fmt.Fprintf(&b, "\r\n--%s--\r\n", boundary)

	return []byte(b.String()), nil
}

// sendMail delivers via plain SMTP with STARTTLS, or implicit TLS when
// SMTP_SECURE is set (port 465 style servers).
func sendMail(recipients []string, msg []byte) error {
	cfg := config.AppConfig
	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)

	if !cfg.SMTPSecure {
		return smtp.SendMail(addr, auth, cfg.SMTPFrom, recipients, msg)
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: cfg.SMTPHost})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(cfg.SMTPFrom); err != nil {
		return err
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
