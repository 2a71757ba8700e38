package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// Mailer delivers the email channel over SMTP. The Message-ID is derived
// from the notification's dedup key, so a resubmitted send carries the same
// id and downstream MTAs can collapse it.
type Mailer struct {
	addr     string
	username string
	password string
	from     *mail.Address
	idDomain string
	logger   *slog.Logger
}

type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func NewMailer(cfg MailerConfig, logger *slog.Logger) *Mailer {
	idDomain := cfg.From
	if i := strings.IndexByte(cfg.From, '@'); i >= 0 {
		idDomain = cfg.From[i+1:]
	}
	return &Mailer{
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		username: cfg.Username,
		password: cfg.Password,
		from:     &mail.Address{Name: cfg.FromName, Address: cfg.From},
		idDomain: idDomain,
		logger:   logger.With("component", "mailer"),
	}
}

func (m *Mailer) Send(ctx context.Context, to string, ev Event) (string, error) {
	messageID := m.messageID(ev)

	var buf bytes.Buffer
	var h mail.Header
	h.SetDate(ev.At)
	h.SetAddressList("From", []*mail.Address{m.from})
	h.SetAddressList("To", []*mail.Address{{Address: to}})
	h.SetSubject(subjectFor(ev))
	h.SetMessageID(messageID)
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})

	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return "", fmt.Errorf("compose message: %w", err)
	}
	if _, err := io.WriteString(w, bodyFor(ev)); err != nil {
		w.Close()
		return "", fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finish message: %w", err)
	}

	var auth sasl.Client
	if m.username != "" {
		auth = sasl.NewPlainClient("", m.username, m.password)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.addr, auth, m.from.Address, []string{to}, &buf)
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("send mail: %w", err)
		}
	}

	m.logger.Debug("email sent", "to", to, "message_id", messageID)
	return messageID, nil
}

func (m *Mailer) messageID(ev Event) string {
	key := ev.DedupKey
	if len(key) > 16 {
		key = key[:16]
	}
	return fmt.Sprintf("%d.%s.%s@%s", ev.Tracked.ID, ev.Change.Type, key, m.idDomain)
}

func subjectFor(ev Event) string {
	name := ev.Tracked.DomainName
	switch ev.Change.Type {
	case domain.NotifyRegistrationChanged:
		return fmt.Sprintf("Registration changed for %s", name)
	case domain.NotifyProvidersChanged:
		return fmt.Sprintf("Providers changed for %s", name)
	case domain.NotifyCertificateChanged:
		return fmt.Sprintf("Certificate changed for %s", name)
	}
	if strings.HasPrefix(string(ev.Change.Type), "domain_expiry_") {
		return fmt.Sprintf("Upcoming expiry for %s", name)
	}
	return fmt.Sprintf("Update for %s", name)
}

func bodyFor(ev Event) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Changes detected for %s on %s:\r\n\r\n",
		ev.Tracked.DomainName, ev.At.Format(time.RFC1123))
	for _, f := range ev.Change.Fields {
		before := f.Before
		if before == "" {
			before = "(none)"
		}
		after := f.After
		if after == "" {
			after = "(none)"
		}
		fmt.Fprintf(&sb, "  %s: %s -> %s\r\n", f.Field, before, after)
	}
	sb.WriteString("\r\nYou receive this because the domain is on your watchlist.\r\n")
	return sb.String()
}
