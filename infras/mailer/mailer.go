package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"studyroom/config"
	"studyroom/infras/otel"
	"studyroom/shared/constant"

	gomail "github.com/wneessen/go-mail"
)

const (
	defaultTimeout  = 15 * time.Second
	implicitTLSPort = 465
)

var ErrNotConfigured = errors.New("smtp is not configured")

type Mail struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &smtpMailer{
		config: config,
		otel:   otel,
	}
}

func (m *smtpMailer) Send(ctx context.Context, message Mail) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if m.config.External.SMTP.Host == "" || m.config.External.SMTP.From == "" {
		return ErrNotConfigured
	}

	msg, err := BuildMessage(m.config.External.SMTP.From, message)
	if err != nil {
		return err
	}

	client, err := newClient(m.config)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout(m.config))
	defer cancel()

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

// BuildMessage renders a plain text message from the configured sender.
func BuildMessage(from string, message Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)

	return msg, nil
}

func newClient(cfg *config.Config) (*gomail.Client, error) {
	smtp := cfg.External.SMTP

	port, err := strconv.Atoi(smtp.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid smtp port %q: %w", smtp.Port, err)
	}

	implicit := implicitTLS(cfg)

	policy := gomail.TLSOpportunistic
	if implicit {
		policy = gomail.NoTLS
	}

	options := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTimeout(timeout(cfg)),
		gomail.WithTLSPolicy(policy),
		gomail.WithTLSConfig(tlsConfig(smtp.Host)),
		gomail.WithDialContextFunc(dialer(smtp.Host, implicit, timeout(cfg))),
	}

	if smtp.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtp.Username),
			gomail.WithPassword(smtp.Password),
		)
	}

	return gomail.NewClient(smtp.Host, options...) //nolint:wrapcheck
}

// implicitTLS reports whether the session is wrapped in TLS from the first byte (SMTPS).
func implicitTLS(cfg *config.Config) bool {
	return cfg.External.SMTP.ImplicitTLS || cfg.External.SMTP.Port == strconv.Itoa(implicitTLSPort)
}

func timeout(cfg *config.Config) time.Duration {
	if cfg.External.SMTP.TimeoutSeconds <= 0 {
		return defaultTimeout
	}

	return time.Duration(cfg.External.SMTP.TimeoutSeconds) * time.Second
}
