// Package notify dispatches change notifications to the configured channels.
// The delivery ledger row is written before any channel is touched: the
// unique key on (tracked domain, type, dedup key) lets a retried pass finish
// an interrupted delivery without duplicating one that already went out.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/changes"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// Event is one notification to be delivered.
type Event struct {
	Tracked  domain.TrackedDomain
	Change   changes.ChangeSet
	DedupKey string // defaults to the change set hash
	At       time.Time
}

// Ledger is the persistent notification record.
type Ledger interface {
	Insert(ctx context.Context, n *domain.Notification) (bool, error)
	SetMessageID(ctx context.Context, id int64, messageID string) error
}

// Publisher delivers the in-app channel.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// EmailSender delivers the email channel and returns the message id it used.
type EmailSender interface {
	Send(ctx context.Context, to string, ev Event) (string, error)
}

// AddressBook maps user ids to email addresses.
type AddressBook interface {
	EmailAddress(ctx context.Context, userID string) (string, error)
}

// StaticAddressBook is a config-backed address book for deployments without
// a user service.
type StaticAddressBook map[string]string

func (b StaticAddressBook) EmailAddress(_ context.Context, userID string) (string, error) {
	return b[userID], nil
}

type Service struct {
	ledger    Ledger
	publisher Publisher
	mailer    EmailSender
	addresses AddressBook
	logger    *slog.Logger
}

func NewService(ledger Ledger, publisher Publisher, mailer EmailSender, addresses AddressBook, logger *slog.Logger) *Service {
	return &Service{
		ledger:    ledger,
		publisher: publisher,
		mailer:    mailer,
		addresses: addresses,
		logger:    logger.With("component", "notify"),
	}
}

// Send records and dispatches one notification. The ledger row is written
// first and doubles as the in-app record, so an in-app publish failure is
// logged, not returned. An email failure is returned: the caller's retry
// re-enters Send, hits the dedup row, sees no stored message id and
// re-attempts only the email. The deterministic Message-ID keeps a re-send
// that raced a crash idempotent on the receiving side.
func (s *Service) Send(ctx context.Context, ev Event) error {
	if ev.DedupKey == "" {
		ev.DedupKey = changes.Hash(ev.Change)
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	n := &domain.Notification{
		TrackedDomainID: ev.Tracked.ID,
		Type:            ev.Change.Type,
		DedupKey:        ev.DedupKey,
		Channels:        channelsFor(ev.Tracked),
	}

	created, err := s.ledger.Insert(ctx, n)
	if err != nil {
		return fmt.Errorf("record notification: %w", err)
	}
	if !created {
		if ev.Tracked.NotifyEmail && s.mailer != nil && n.MessageID == nil {
			// A previous pass wrote the row but crashed or failed before the
			// email went out. Finish the delivery.
			return s.sendEmail(ctx, n, ev)
		}
		s.logger.Debug("notification already sent",
			"tracked_domain_id", ev.Tracked.ID,
			"type", ev.Change.Type,
			"dedup_key", ev.DedupKey,
		)
		return nil
	}

	if ev.Tracked.NotifyInApp && s.publisher != nil {
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.logger.Error("in-app publish failed",
				"tracked_domain_id", ev.Tracked.ID,
				"type", ev.Change.Type,
				"error", err,
			)
		}
	}

	if ev.Tracked.NotifyEmail && s.mailer != nil {
		if err := s.sendEmail(ctx, n, ev); err != nil {
			return err
		}
	}

	s.logger.Info("notification sent",
		"tracked_domain_id", ev.Tracked.ID,
		"domain", ev.Tracked.DomainName,
		"type", ev.Change.Type,
		"channels", n.Channels,
	)
	return nil
}

func (s *Service) sendEmail(ctx context.Context, n *domain.Notification, ev Event) error {
	to, err := s.addresses.EmailAddress(ctx, ev.Tracked.UserID)
	if err != nil || to == "" {
		// Not retryable: an address that does not exist will not appear on
		// the next attempt either.
		s.logger.Warn("no email address for user",
			"user_id", ev.Tracked.UserID,
			"error", err,
		)
		return nil
	}

	messageID, err := s.mailer.Send(ctx, to, ev)
	if err != nil {
		return fmt.Errorf("send email for tracked domain %d: %w", ev.Tracked.ID, err)
	}
	if err := s.ledger.SetMessageID(ctx, n.ID, messageID); err != nil {
		// The mail is out; failing here would trigger a re-send on retry.
		s.logger.Error("store message id failed", "notification_id", n.ID, "error", err)
	}
	return nil
}

func channelsFor(t domain.TrackedDomain) []string {
	var channels []string
	if t.NotifyInApp {
		channels = append(channels, "in_app")
	}
	if t.NotifyEmail {
		channels = append(channels, "email")
	}
	return channels
}
