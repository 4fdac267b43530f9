package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/inkandimagination/artstore/internal/domain/model"
)

// Notifier sends transactional emails. All sends are best-effort: callers
// log failures but never fail the request that triggered them.
type Notifier interface {
	SendOrderConfirmation(order *model.Order) error
	SendAdminNotification(order *model.Order) error
	SendContactNotification(contact *model.Contact) error
}

// SMTPNotifier delivers notifications over plain SMTP.
type SMTPNotifier struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
}

// NewSMTPNotifier builds an SMTP-backed notifier.
func NewSMTPNotifier(host string, port int, username, password, from, adminEmail string) *SMTPNotifier {
	return &SMTPNotifier{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		adminEmail: adminEmail,
	}
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}
	return smtp.SendMail(addr, auth, n.from, []string{to}, []byte(msg))
}

func itemsSummary(items []model.OrderItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x%d @ %.2f\n", item.Title, item.Quantity, item.Price)
	}
	return b.String()
}

// SendOrderConfirmation emails the customer after a successful payment.
func (n *SMTPNotifier) SendOrderConfirmation(order *model.Order) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order!\n\nOrder ID: %s\nOrder date: %s\nTotal: %.2f\n\nItems:\n%s\nShipping address:\n%s\n%s, %s %s\n%s\n\nWe will email you again once your order ships.\n",
		order.CustomerName,
		order.ID,
		order.CreatedAt.Format("2006-01-02"),
		order.TotalAmount,
		itemsSummary(order.Items),
		order.Address.Street,
		order.Address.City, order.Address.State, order.Address.ZipCode,
		order.Address.Country,
	)
	return n.send(order.CustomerEmail, "Order Confirmation - InkAndImagination.com", body)
}

// SendAdminNotification alerts the store owner about a new paid order.
func (n *SMTPNotifier) SendAdminNotification(order *model.Order) error {
	body := fmt.Sprintf(
		"New order received.\n\nOrder ID: %s\nCustomer: %s <%s>\nPhone: %s\nTotal: %.2f\n\nItems:\n%s",
		order.ID,
		order.CustomerName, order.CustomerEmail,
		order.Phone,
		order.TotalAmount,
		itemsSummary(order.Items),
	)
	return n.send(n.adminEmail, "New Order Received - InkAndImagination.com", body)
}

// SendContactNotification alerts the store owner about a contact message.
func (n *SMTPNotifier) SendContactNotification(contact *model.Contact) error {
	body := fmt.Sprintf(
		"New contact message.\n\nFrom: %s <%s>\nDate: %s\n\n%s\n",
		contact.Name, contact.Email,
		contact.CreatedAt.Format("2006-01-02 15:04"),
		contact.Message,
	)
	return n.send(n.adminEmail, "New Contact Message - InkAndImagination.com", body)
}

// NopNotifier discards all notifications. Used when SMTP is not configured.
type NopNotifier struct{}

func (NopNotifier) SendOrderConfirmation(*model.Order) error     { return nil }
func (NopNotifier) SendAdminNotification(*model.Order) error     { return nil }
func (NopNotifier) SendContactNotification(*model.Contact) error { return nil }
