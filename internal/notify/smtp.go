package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"job-monitor/internal/config"
)

// SendSMTP delivers the payload directly over authenticated SMTP
// (STARTTLS ports like 587). Delivery failure is the caller's warning,
// never a pipeline failure.
func SendSMTP(cfg config.Config, password string, p Payload) error {
	host := cfg.SMTP.Host
	if host == "" {
		return fmt.Errorf("smtp.host not configured")
	}
	addr := fmt.Sprintf("%s:%d", host, cfg.SMTP.Port)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", cfg.SMTP.From)
	fmt.Fprintf(&msg, "To: %s\r\n", p.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", p.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(p.Body)

	auth := smtp.PlainAuth("", cfg.SMTP.Username, password, host)
	if err := smtp.SendMail(addr, auth, cfg.SMTP.From, []string{p.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send via %s: %w", addr, err)
	}
	return nil
}
