package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SecretStore = (*SecretRepo)(nil)

// SecretRepo is the SQLite implementation of the SecretStore port interface.
// Passwords are stored verbatim.
type SecretRepo struct {
	db  *DB
	now func() time.Time
}

// NewSecretRepo creates a new SecretRepo backed by the given DB.
func NewSecretRepo(db *DB) *SecretRepo {
	return &SecretRepo{db: db, now: time.Now}
}

// Create inserts a secret in a single statement and returns the stored record.
func (r *SecretRepo) Create(ctx context.Context, secret model.Secret) (model.Secret, error) {
	const query = `INSERT INTO secrets (name, email, url, category_id, password, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	if secret.CreatedAt.IsZero() {
		secret.CreatedAt = r.now()
	}
	secret.CreatedAt = secret.CreatedAt.UTC()

	result, err := r.db.Writer.ExecContext(ctx, query,
		secret.Name,
		secret.Email,
		nullString(secret.URL),
		nullInt64(secret.CategoryID),
		secret.Password,
		secret.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.Secret{}, fmt.Errorf("create secret %q: %w", secret.Name, err)
	}

	secret.ID, err = result.LastInsertId()
	if err != nil {
		return model.Secret{}, fmt.Errorf("get secret id: %w", err)
	}

	return secret, nil
}

// ListAll returns every secret joined with its category name, ordered by ID.
// A secret whose category_id matches no category gets a nil CategoryName.
func (r *SecretRepo) ListAll(ctx context.Context) ([]model.SecretView, error) {
	const query = `
		SELECT s.id, s.name, s.email, s.url, s.category_id, c.name, s.password, s.created_at
		FROM secrets s
		LEFT JOIN categories c ON s.category_id = c.id
		ORDER BY s.id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list secrets: %w", err)
	}
	defer rows.Close()

	var views []model.SecretView
	for rows.Next() {
		view, err := scanSecretView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan secret: %w", err)
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate secrets: %w", err)
	}

	return views, nil
}

// Delete removes a secret by ID and reports whether a row existed.
func (r *SecretRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM secrets WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete secret %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}

	return rows > 0, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSecretView(s scanner) (model.SecretView, error) {
	var (
		view         model.SecretView
		url          sql.NullString
		categoryID   sql.NullInt64
		categoryName sql.NullString
		createdAt    string
	)

	err := s.Scan(&view.ID, &view.Name, &view.Email, &url, &categoryID, &categoryName, &view.Password, &createdAt)
	if err != nil {
		return model.SecretView{}, err
	}

	if url.Valid {
		view.URL = &url.String
	}
	if categoryID.Valid {
		view.CategoryID = &categoryID.Int64
	}
	if categoryName.Valid {
		view.CategoryName = &categoryName.String
	}

	view.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.SecretView{}, fmt.Errorf("parse created_at: %w", err)
	}

	return view, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		"2006-01-02 15:04:05.999999",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
