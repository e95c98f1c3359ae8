package postgres

import (
	"context"
	"fmt"

	"europlast-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of pgxpool.Pool the inbox needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const contactMessagesSchema = `
	CREATE TABLE IF NOT EXISTS contact_messages (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		company     TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL,
		subject     TEXT NOT NULL,
		message     TEXT NOT NULL,
		client_ip   TEXT NOT NULL DEFAULT '',
		user_agent  TEXT NOT NULL DEFAULT '',
		request_id  TEXT NOT NULL DEFAULT '',
		received_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contact_messages_received_at ON contact_messages (received_at DESC);`

type contactInboxRepo struct {
	db Execer
}

// NewContactInboxRepository creates a new contact inbox repository
func NewContactInboxRepository(db Execer) domain.ContactInboxRepository {
	return &contactInboxRepo{db: db}
}

// EnsureSchema creates the contact_messages table if it does not exist
func (r *contactInboxRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, contactMessagesSchema); err != nil {
		return fmt.Errorf("failed to create contact_messages: %w", err)
	}
	return nil
}

// Save stores an accepted submission
func (r *contactInboxRepo) Save(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_messages
			(id, name, email, company, phone, subject, message, client_ip, user_agent, request_id, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`

	req := sub.Request
	_, err := r.db.Exec(ctx, query,
		sub.ID, req.Name(), req.Email(), req.Company(), req.Phone(), req.Subject(), req.Message(),
		sub.ClientIP, sub.UserAgent, sub.RequestID, sub.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}
