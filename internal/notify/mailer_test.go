package notify

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jakejarvis/domainstack.io-sub006/internal/changes"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

func testMailer() *Mailer {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewMailer(MailerConfig{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "alerts@domainwatch.example",
		FromName: "Domain Watch",
	}, logger)
}

func TestMessageIDIsDeterministic(t *testing.T) {
	m := testMailer()
	ev := eventFixture()
	ev.DedupKey = "aabbccddeeff00112233445566778899"

	first := m.messageID(ev)
	second := m.messageID(ev)
	assert.Equal(t, first, second)
	// Long dedup keys are clipped; the id domain comes from the From address.
	assert.Equal(t, "7.registration_changed.aabbccddeeff0011@domainwatch.example", first)

	ev.DedupKey = "2026-09-19"
	assert.Equal(t, "7.registration_changed.2026-09-19@domainwatch.example", m.messageID(ev))
}

func TestSubjectFor(t *testing.T) {
	ev := eventFixture()
	assert.Equal(t, "Registration changed for example.com", subjectFor(ev))

	ev.Change.Type = domain.NotifyCertificateChanged
	assert.Equal(t, "Certificate changed for example.com", subjectFor(ev))

	ev.Change.Type = domain.ExpiryNotificationType(7)
	assert.Equal(t, "Upcoming expiry for example.com", subjectFor(ev))

	ev.Change.Type = "something_new"
	assert.Equal(t, "Update for example.com", subjectFor(ev))
}

func TestBodyFor(t *testing.T) {
	ev := eventFixture()
	ev.At = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ev.Change.Fields = []changes.FieldChange{
		{Field: "registrar", Before: "Old Registrar", After: "New Registrar"},
		{Field: "email_provider", Before: "", After: "provider:3"},
	}

	body := bodyFor(ev)
	assert.Contains(t, body, "example.com")
	assert.Contains(t, body, "registrar: Old Registrar -> New Registrar")
	assert.Contains(t, body, "email_provider: (none) -> provider:3")
}
