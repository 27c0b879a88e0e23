package mailer

import (
	"Inkstone/internal/api/config"
	"crypto/tls"
	"fmt"
	log "log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Send delivers a plain text email over SMTP, upgrading the connection with
// STARTTLS when the server offers it. Delivery is skipped silently when the
// mailer is disabled in the configuration.
func Send(to, subject, body string) error {
	cfg := config.Cfg.SMTP
	if !cfg.Enabled {
		return nil
	}
	if cfg.Host == "" || cfg.From == "" {
		return fmt.Errorf("smtp not configured")
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	fromName := cfg.FromName
	if fromName == "" {
		fromName = config.Cfg.Server.AppName
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", fromName), cfg.From),
		"To":           to,
		"Subject":      mime.QEncoding.Encode("utf-8", subject),
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}
	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if cfg.StartTLS {
		d := net.Dialer{Timeout: 5 * time.Second}
		conn, err := d.Dial("tcp", addr)
		if err != nil {
			return err
		}
		_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

		c, err := smtp.NewClient(conn, cfg.Host)
		if err != nil {
			_ = conn.Close()
			return err
		}
		defer c.Close()

		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
				return err
			}
		}
		if cfg.Username != "" {
			if err := c.Auth(auth); err != nil {
				return err
			}
		}
		if err := c.Mail(cfg.From); err != nil {
			return err
		}
		if err := c.Rcpt(to); err != nil {
			return err
		}
		wc, err := c.Data()
		if err != nil {
			return err
		}
		if _, err := wc.Write([]byte(msg.String())); err != nil {
			_ = wc.Close()
			return err
		}
		return wc.Close()
	}

	return smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg.String()))
}

// SendAsync fires the delivery on a goroutine so request handling does not
// block on the SMTP round trip.
func SendAsync(to, subject, body string) {
	go func() {
		if err := Send(to, subject, body); err != nil {
			log.Error("send mail failed", "to", to, "subject", subject, "err", err)
		}
	}()
}

// SendWelcomeAsync greets a freshly registered account.
func SendWelcomeAsync(to, nickname string) {
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour account has been created. Welcome to %s!\r\n",
		nickname, config.Cfg.Server.AppName,
	)
	SendAsync(to, fmt.Sprintf("Welcome to %s", config.Cfg.Server.AppName), body)
}

// SendPasswordResetAsync mails the password recovery link for a reset token.
func SendPasswordResetAsync(to, token string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", config.Cfg.Server.AppHost, token)
	body := fmt.Sprintf(
		"A password reset was requested for your account.\r\n\r\n"+
			"Open the link below to choose a new password:\r\n%s\r\n\r\n"+
			"If you did not request this, you can ignore this message.\r\n",
		link,
	)
	SendAsync(to, fmt.Sprintf("%s password recovery", config.Cfg.Server.AppName), body)
}
