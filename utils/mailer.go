package utils

import (
	"fmt"
	"strconv"

	"dealership-backend/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer wraps the SMTP dialer. It is constructed once in main and
// injected into whoever sends mail; there is no package-level client.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer builds a Mailer from SMTP_* environment variables.
func NewMailer() *Mailer {
	mailHost := config.GetEnv("SMTP_HOST")
	mailPort := config.GetEnv("SMTP_PORT")
	mailUser := config.GetEnv("SMTP_USER")
	mailPassword := config.GetEnv("SMTP_PASSWORD")
	from := config.GetEnv("SMTP_FROM")

	port, err := strconv.Atoi(mailPort)
	if err != nil {
		config.Logger.Error("Invalid SMTP_PORT value, defaulting to port 25",
			zap.String("provided_port", mailPort),
			zap.Error(err),
		)
		port = 25
	}

	return &Mailer{
		dialer: gomail.NewDialer(mailHost, port, mailUser, mailPassword),
		from:   from,
	}
}

// SendEmail sends an email with optional OTP and attachment.
func (m *Mailer) SendEmail(email, message, title, otp, attachmentPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", title)

	if otp != "" {
		msg.SetBody("text/plain", fmt.Sprintf("%s\nYour OTP is: %s", message, otp))
		msg.AddAlternative("text/html", fmt.Sprintf(`
			<html>
				<head>
					<meta charset="utf-8">
					<title>Your OTP Code</title>
				</head>
				<body>
					<p>%s</p>
					<p>Your OTP (Verification code): <strong>%s</strong></p>
					<p>This code is valid for 5 minutes. If you did not request it, please ignore this email.</p>
				</body>
			</html>
		`, message, otp))
	} else {
		msg.SetBody("text/plain", message)
	}

	if attachmentPath != "" {
		msg.Attach(attachmentPath)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		config.Logger.Error("Email send failed",
			zap.String("to_email", email),
			zap.String("subject", title),
			zap.Bool("has_otp", otp != ""),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// SendAsync delivers in the background. Notification failures are
// logged and never surfaced to the request that triggered them.
func (m *Mailer) SendAsync(email, message, title string) {
	go func() {
		if err := m.SendEmail(email, message, title, "", ""); err != nil {
			config.Logger.Warn("Background email delivery failed",
				zap.String("to_email", email),
				zap.String("subject", title),
			)
		}
	}()
}
