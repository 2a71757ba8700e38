package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// ErrPlanLimit is returned when unarchiving would exceed the user's active
// tracked-domain capacity.
var ErrPlanLimit = errors.New("active tracked domain limit reached")

const trackedColumns = `
	t.id, t.user_id, t.domain_id, d.name AS domain_name, t.verified,
	t.verification_method, t.verification_status, t.verification_token,
	t.failed_checks, t.notify_email, t.notify_in_app, t.last_checked_at,
	t.archived_at, t.created_at, t.updated_at`

// TrackedStore persists user monitoring subscriptions and their ownership
// verification lifecycle.
type TrackedStore struct {
	db *sqlx.DB
}

func NewTrackedStore(db *sqlx.DB) *TrackedStore {
	return &TrackedStore{db: db}
}

// Create registers a new unverified subscription with a fresh verification
// token.
func (s *TrackedStore) Create(ctx context.Context, userID string, domainID int64, method domain.VerificationMethod) (*domain.TrackedDomain, error) {
	token := uuid.NewString()

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO tracked_domains (user_id, domain_id, verification_method, verification_token)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, domainID, method, token,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create tracked domain: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *TrackedStore) Get(ctx context.Context, id int64) (*domain.TrackedDomain, error) {
	var t domain.TrackedDomain
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &t,
		`SELECT `+trackedColumns+`
		 FROM tracked_domains t JOIN domains d ON d.id = t.domain_id
		 WHERE t.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tracked domain %d: %w", id, err)
	}
	return &t, nil
}

// MarkVerified records a successful ownership proof and clears any failure
// streak.
func (s *TrackedStore) MarkVerified(ctx context.Context, id int64, method domain.VerificationMethod) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE tracked_domains
		 SET verified = true, verification_status = 'verified', verification_method = $1,
		     failed_checks = 0, updated_at = now()
		 WHERE id = $2`, method, id)
	if err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// RecordVerificationFailure bumps the failure streak. Within the grace budget
// the domain keeps verified=true with status failing; once the budget is
// exhausted verification is revoked.
func (s *TrackedStore) RecordVerificationFailure(ctx context.Context, id int64) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE tracked_domains
		 SET failed_checks = failed_checks + 1,
		     verification_status = CASE
		         WHEN failed_checks + 1 >= $1 THEN 'unverified'
		         ELSE 'failing'
		     END,
		     verified = (failed_checks + 1 < $1) AND verified,
		     updated_at = now()
		 WHERE id = $2`,
		domain.MaxVerificationFailures, id)
	if err != nil {
		return fmt.Errorf("record verification failure: %w", err)
	}
	return nil
}

// Archive soft-deletes the subscription; archived domains stop being
// monitored and do not count against plan limits.
func (s *TrackedStore) Archive(ctx context.Context, id int64) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE tracked_domains SET archived_at = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("archive tracked domain: %w", err)
	}
	return nil
}

// Unarchive restores a subscription, subject to the user's active capacity.
func (s *TrackedStore) Unarchive(ctx context.Context, id int64, maxActive int) error {
	var t domain.TrackedDomain
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &t,
		`SELECT `+trackedColumns+`
		 FROM tracked_domains t JOIN domains d ON d.id = t.domain_id
		 WHERE t.id = $1`, id)
	if err != nil {
		return fmt.Errorf("get tracked domain %d: %w", id, err)
	}

	var active int
	err = executor(ctx, s.db).QueryRowxContext(ctx,
		`SELECT count(*) FROM tracked_domains WHERE user_id = $1 AND archived_at IS NULL`,
		t.UserID,
	).Scan(&active)
	if err != nil {
		return fmt.Errorf("count active tracked domains: %w", err)
	}
	if maxActive > 0 && active >= maxActive {
		return ErrPlanLimit
	}

	_, err = executor(ctx, s.db).ExecContext(ctx,
		`UPDATE tracked_domains SET archived_at = NULL, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unarchive tracked domain: %w", err)
	}
	return nil
}

// ListDue returns verified, unarchived subscriptions whose domain has not
// been checked within the monitoring interval. Due-ness is keyed on
// last_checked_at, not updated_at, so verification or archive updates do not
// postpone the next check; a never-checked subscription is always due.
func (s *TrackedStore) ListDue(ctx context.Context, olderThan time.Time, limit int) ([]domain.TrackedDomain, error) {
	var tracked []domain.TrackedDomain
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &tracked,
		`SELECT `+trackedColumns+`
		 FROM tracked_domains t JOIN domains d ON d.id = t.domain_id
		 WHERE t.verified AND t.archived_at IS NULL
		   AND (t.last_checked_at IS NULL OR t.last_checked_at < $1)
		 ORDER BY t.last_checked_at NULLS FIRST
		 LIMIT $2`,
		olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("list due tracked domains: %w", err)
	}
	return tracked, nil
}

// Touch stamps last_checked_at after a monitoring pass so the subscription
// rotates to the back of the due queue.
func (s *TrackedStore) Touch(ctx context.Context, id int64) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE tracked_domains SET last_checked_at = now(), updated_at = now() WHERE id = $1`, id)
	return err
}
