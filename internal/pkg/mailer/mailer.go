// Package mailer renders and sends the transactional emails. Sends are
// best-effort: every method reports success with a bool and logs failures,
// so callers never roll back committed state over a mail problem.
package mailer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

const (
	qrAttachmentName = "entry-pass.png"
	qrImageSize      = 256
)

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type Mailer struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

func New(conf *SMTPConfig, frontendURL string) *Mailer {
	return &Mailer{
		dialer:      gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
		from:        conf.From,
		frontendURL: frontendURL,
	}
}

// Send delivers one HTML email. It never returns an error; a failed send
// is logged and reported as false.
func (m *Mailer) Send(to, subject, htmlBody string) bool {
	return m.send(to, subject, htmlBody, nil)
}

func (m *Mailer) send(to, subject, htmlBody string, qrPNG []byte) bool {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if len(qrPNG) > 0 {
		msg.Embed(qrAttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrPNG)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		zap.L().Error("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return false
	}

	zap.L().Info("email sent", zap.String("to", to), zap.String("subject", subject))

	return true
}

func (m *Mailer) SendRegistrationPending(to, userName, eventName string) bool {
	subject := fmt.Sprintf("Registration Pending for %s", eventName)

	return m.Send(to, subject, registrationPendingBody(userName, eventName))
}

// SendRegistrationApproved sends the approval email. For offline events a
// QR entry pass encoding the registration details is embedded.
func (m *Mailer) SendRegistrationApproved(to, userName, eventName, eventDate, eventLocation string, offline bool, registrationID string) bool {
	subject := fmt.Sprintf("Registration Approved for %s", eventName)

	var qrPNG []byte
	if offline && registrationID != "" {
		qrPNG = m.GenerateQRCode(entryPassPayload(eventName, registrationID, userName))
	}

	body := registrationApprovedBody(userName, eventName, eventDate, eventLocation, registrationID, len(qrPNG) > 0)

	return m.send(to, subject, body, qrPNG)
}

func (m *Mailer) SendRegistrationRejected(to, userName, eventName, reason string) bool {
	subject := fmt.Sprintf("Registration Update for %s", eventName)

	return m.Send(to, subject, registrationRejectedBody(userName, eventName, reason))
}

func (m *Mailer) SendGuruApproved(to, userName string) bool {
	subject := "Your Zuper Guru Application Has Been Approved!"
	dashboardURL := m.frontendURL + "/guru/dashboard"

	return m.Send(to, subject, guruApprovedBody(userName, dashboardURL))
}

func (m *Mailer) SendGuruRejected(to, userName, reason string) bool {
	subject := "Update on Your Zuper Guru Application"

	return m.Send(to, subject, guruRejectedBody(userName, reason))
}

// GenerateQRCode renders the payload as a PNG image, or nil when encoding
// fails (the email then simply goes out without the pass).
func (m *Mailer) GenerateQRCode(payload string) []byte {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		zap.L().Error("failed to generate QR code", zap.Error(err))
		return nil
	}

	return png
}

func entryPassPayload(eventName, registrationID, userName string) string {
	payload, err := json.Marshal(struct {
		EventName      string `json:"eventName"`
		RegistrationID string `json:"registrationId"`
		UserName       string `json:"userName"`
		Timestamp      string `json:"timestamp"`
	}{
		EventName:      eventName,
		RegistrationID: registrationID,
		UserName:       userName,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return registrationID
	}

	return string(payload)
}
