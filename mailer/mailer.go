// Package mailer sends order confirmation mail. Checkout treats it as a
// best-effort side effect: failures are logged, never surfaced to the client.
package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/arekings/ringstech-backend/config"
	"github.com/arekings/ringstech-backend/models"
)

type Mailer interface {
	SendOrderConfirmation(order models.Order) error
}

// New returns an SMTP mailer, or a no-op one when no SMTP host is configured.
func New(cfg config.Config, log *zap.SugaredLogger) Mailer {
	if cfg.SMTPHost == "" {
		log.Info("no SMTP host configured, order confirmation mail disabled")
		return noopMailer{}
	}
	return &smtpMailer{cfg: cfg, log: log}
}

type smtpMailer struct {
	cfg config.Config
	log *zap.SugaredLogger
}

func (m *smtpMailer) SendOrderConfirmation(order models.Order) error {
	body := fmt.Sprintf(
		"To: %s\r\nSubject: Your Ringstech Order %s\r\n\r\n"+
			"Hello %s,\r\n\r\nYour order has been placed. Tracking number: %s\r\nTotal: Kshs %s\r\n",
		order.EmailAddress, order.OrderID, order.FirstName, order.TrackingNumber,
		order.TotalAmount.StringFixed(2),
	)

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, m.cfg.MailFrom, []string{order.EmailAddress}, []byte(body)); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	m.log.Infow("order confirmation sent", "order_id", order.OrderID, "email", order.EmailAddress)
	return nil
}

type noopMailer struct{}

func (noopMailer) SendOrderConfirmation(models.Order) error { return nil }
