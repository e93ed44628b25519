package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// storedTimeLayout is fixed width so created_at sorts correctly as text.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ParsedEmail is one stored parse result.
type ParsedEmail struct {
	ID              int64
	InputText       string
	ReplyType       *string
	ProposedTime    *string // RFC 3339
	MeetingLink     *string
	DelegateTo      *string
	AdditionalNotes *string
	CreatedAt       time.Time
}

// InsertParsedEmail stores rec and returns it with ID and CreatedAt set.
func (db *DB) InsertParsedEmail(ctx context.Context, rec ParsedEmail) (ParsedEmail, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec.CreatedAt = db.now().UTC()

	query := `
		INSERT INTO parsed_emails
			(input_text, reply_type, proposed_time, meeting_link, delegate_to, additional_notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.conn.ExecContext(ctx, query,
		rec.InputText,
		nullable(rec.ReplyType),
		nullable(rec.ProposedTime),
		nullable(rec.MeetingLink),
		nullable(rec.DelegateTo),
		nullable(rec.AdditionalNotes),
		rec.CreatedAt.Format(storedTimeLayout),
	)
	if err != nil {
		return ParsedEmail{}, fmt.Errorf("failed to insert parsed email: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ParsedEmail{}, fmt.Errorf("failed to get inserted id: %w", err)
	}
	rec.ID = id

	return rec, nil
}

// ListParsedEmails returns up to limit rows, newest first.
func (db *DB) ListParsedEmails(ctx context.Context, limit int) ([]ParsedEmail, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	query := `
		SELECT id, input_text, reply_type, proposed_time, meeting_link, delegate_to, additional_notes, created_at
		FROM parsed_emails
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query parsed emails: %w", err)
	}
	defer rows.Close()

	records := make([]ParsedEmail, 0, limit)
	for rows.Next() {
		var (
			rec                                        ParsedEmail
			replyType, proposed, link, delegate, notes sql.NullString
			createdAt                                  string
		)
		if err := rows.Scan(&rec.ID, &rec.InputText, &replyType, &proposed, &link, &delegate, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan parsed email: %w", err)
		}
		rec.ReplyType = fromNull(replyType)
		rec.ProposedTime = fromNull(proposed)
		rec.MeetingLink = fromNull(link)
		rec.DelegateTo = fromNull(delegate)
		rec.AdditionalNotes = fromNull(notes)
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parsed emails: %w", err)
	}

	return records, nil
}

// CountParsedEmails returns the number of stored rows.
func (db *DB) CountParsedEmails(ctx context.Context) (int64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var n int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM parsed_emails").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count parsed emails: %w", err)
	}
	return n, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
