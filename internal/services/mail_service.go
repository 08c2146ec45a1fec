package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"barrio/internal/infra"
)

type IMailService interface {
	SendResetPasswordEmail(to string, token string) error
}

type smtpMailService struct {
	cfg     infra.SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg infra.SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("resetHTML").Parse(resetHTMLTemplate)),
		textTpl: template.Must(template.New("resetText").Parse(resetTextTemplate)),
	}
}

type resetEmailData struct {
	AppName  string
	ResetURL string
	Year     int
}

const resetHTMLTemplate = `<!doctype html>
<html>
<body style="font-family: sans-serif; color: #1e293b;">
  <h2>Reset your password</h2>
  <p>We received a request to reset your {{.AppName}} password. Click the link
  below to continue. If you did not request this, you can safely ignore this
  email.</p>
  <p><a href="{{.ResetURL}}">Reset Password</a></p>
  <p style="color: #64748b; font-size: 13px;">If the link does not work, copy
  and paste this address into your browser:<br>{{.ResetURL}}</p>
  <p style="color: #64748b; font-size: 13px;">&copy; {{.Year}} {{.AppName}}</p>
</body>
</html>`

const resetTextTemplate = `Reset your password

We received a request to reset your {{.AppName}} password. Open this link to continue:
{{.ResetURL}}

If you did not request this, you can safely ignore this email.

-- {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendResetPasswordEmail(to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	data := resetEmailData{
		AppName:  s.cfg.AppName,
		ResetURL: link,
		Year:     time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(to, "Password Reset Request", hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	if s.cfg.UseSSL {
		// SMTPS, implicit TLS (usually port 465)
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer client.Quit()

		return s.deliver(client, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else {
		return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.Host)
	}

	return s.deliver(client, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(client *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", name, s.cfg.From)
}
