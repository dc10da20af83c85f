package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"shipment_erp/internal/app/apperr"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

const TrackingSubject = "Shipment Tracking Update"

// Tracking is the content of a tracking update mail.
type Tracking struct {
	BLNo        string
	ContainerNo string
	ETD         string
	ETA         string
	Message     string
}

// Mailer sends notification mails. Implementations do not retry.
type Mailer interface {
	SendTrackingUpdate(ctx context.Context, to string, tracking Tracking) error
	Send(ctx context.Context, to, subject, body string) error
}

var trackingTemplate = template.Must(template.New("tracking").Parse(
	`<p><b>BL No:</b> {{.BLNo}}</p>
<p><b>Container No:</b> {{.ContainerNo}}</p>
<p><b>ETD:</b> {{.ETD}}</p>
<p><b>ETA:</b> {{.ETA}}</p>
<p>{{.Message}}</p>
`))

var plainTemplate = template.Must(template.New("plain").Parse(`<p>{{.}}</p>
`))

// TrackingBody renders the HTML body; every value is escaped.
func TrackingBody(tracking Tracking) (string, error) {
	var buf bytes.Buffer
	if err := trackingTemplate.Execute(&buf, tracking); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPMailer delivers through one SMTP relay, dialing per message.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendTrackingUpdate(ctx context.Context, to string, tracking Tracking) error {
	body, err := TrackingBody(tracking)
	if err != nil {
		return fmt.Errorf("%w: rendering body: %v", apperr.ErrSend, err)
	}
	return m.deliver(ctx, to, TrackingSubject, body)
}

// Send mails free text, escaped and wrapped in a paragraph.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	var buf bytes.Buffer
	if err := plainTemplate.Execute(&buf, body); err != nil {
		return fmt.Errorf("%w: rendering body: %v", apperr.ErrSend, err)
	}
	return m.deliver(ctx, to, subject, buf.String())
}

func (m *SMTPMailer) deliver(ctx context.Context, to, subject, html string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("%w: from address: %v", apperr.ErrSend, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: recipient %q: %v", apperr.ErrValidation, to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Password),
		)
	}
	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrSend, err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrSend, err)
	}

	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("mail sent")
	return nil
}

// Disabled is used when no SMTP host is configured; every send fails.
type Disabled struct{}

func (Disabled) SendTrackingUpdate(context.Context, string, Tracking) error {
	return fmt.Errorf("%w: mail is not configured", apperr.ErrSend)
}

func (Disabled) Send(context.Context, string, string, string) error {
	return fmt.Errorf("%w: mail is not configured", apperr.ErrSend)
}
