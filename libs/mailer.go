package libs

import (
	"context"
	"errors"
	"fmt"
	"html"

	"product-catalog/config"
	"product-catalog/models"

	"gopkg.in/gomail.v2"
)

var ErrSMTPNotConfigured = errors.New("SMTP configuration missing")

// EmailNotifier mails the catalog owner whenever a product is added.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailNotifier(cfg *config.Config) (*EmailNotifier, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" || cfg.NotifyEmail == "" {
		return nil, ErrSMTPNotConfigured
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   from,
		to:     cfg.NotifyEmail,
	}, nil
}

func (n *EmailNotifier) ProductCreated(ctx context.Context, p models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", "New product added: "+p.Name)
	m.SetBody("text/html", productCreatedBody(p))

	// gomail has no context support, so the send is abandoned on ctx expiry.
	sent := make(chan error, 1)
	go func() { sent <- n.dialer.DialAndSend(m) }()

	select {
	case err := <-sent:
		if err != nil {
			return fmt.Errorf("failed to send product notification: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("product notification abandoned: %w", ctx.Err())
	}
}

func productCreatedBody(p models.Product) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>%s</h2>
    <p>%s</p>
    <p><strong>Price:</strong> $%.2f</p>
    <p><img src="%s" alt="%s" style="max-width: 600px;"></p>
    <p style="color: #666; font-size: 12px;">Added %s</p>
</body>
</html>
`,
		html.EscapeString(p.Name),
		html.EscapeString(p.Description),
		p.Price,
		html.EscapeString(p.DisplayImageURL()),
		html.EscapeString(p.Name),
		p.CreatedAt.Format("Jan 2, 2006"),
	)
}
