package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"github.com/jordan-wright/email"

	"github.com/redmonkez12/fintrack/internal/config"
	"github.com/redmonkez12/fintrack/internal/logging"
	"github.com/redmonkez12/fintrack/templates"
)

var subjects = map[Kind]string{
	KindVerification:  "Confirme seu e-mail",
	KindPasswordReset: "Recuperação de senha",
}

// sendFunc delivers a built mail. Replaced in tests.
type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

func smtpSend(e *email.Email, addr string, auth smtp.Auth) error {
	return e.Send(addr, auth)
}

// Service renders account mails and delivers them over SMTP
type Service struct {
	cfg         config.EmailConfig
	recoveryTTL time.Duration
	templates   map[Kind]*template.Template
	send        sendFunc
	logger      *logging.Logger
}

func NewService(cfg config.EmailConfig, recoveryTTL time.Duration, logger *logging.Logger) (*Service, error) {
	tmpls := make(map[Kind]*template.Template, len(subjects))
	for kind := range subjects {
		t, err := template.ParseFS(templates.EmailFS, "email/layout.html", "email/"+string(kind)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", kind, err)
		}
		tmpls[kind] = t
	}

	return &Service{
		cfg:         cfg,
		recoveryTTL: recoveryTTL,
		templates:   tmpls,
		send:        smtpSend,
		logger:      logger,
	}, nil
}

// Deliver renders the message and sends it. Called by queue workers.
func (s *Service) Deliver(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := s.render(msg)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	e := email.NewEmail()
	e.From = s.cfg.FromAddress
	e.To = []string{msg.To}
	e.Subject = subjects[msg.Kind]
	e.HTML = body

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	if err := s.send(e, addr, auth); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.Info("email sent", "message_id", msg.ID, "kind", msg.Kind)
	return nil
}

func (s *Service) render(msg Message) ([]byte, error) {
	tmpl, ok := s.templates[msg.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown message kind %q", msg.Kind)
	}

	data := struct {
		Name     string
		Link     string
		ValidFor string
	}{
		Name:     msg.Name,
		Link:     s.link(msg),
		ValidFor: validity(s.recoveryTTL),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *Service) link(msg Message) string {
	base := strings.TrimRight(s.cfg.FrontendURL, "/")
	code := url.PathEscape(msg.Code)
	if msg.Kind == KindPasswordReset {
		return base + "/reset-password/" + code
	}
	return base + "/verify-email/" + code
}

func validity(d time.Duration) string {
	if d >= time.Hour {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hora"
		}
		return fmt.Sprintf("%d horas", hours)
	}
	return fmt.Sprintf("%d minutos", int(d/time.Minute))
}
