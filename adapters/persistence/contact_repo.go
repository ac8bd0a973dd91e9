package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/contact"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

func (r *postgresContactRepo) Insert(ctx context.Context, c contact.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, message, received, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Email, c.Message, c.Received, c.Read)
	if err != nil {
		return apperror.NewInternal("failed to insert contact", err)
	}
	return nil
}

func (r *postgresContactRepo) Update(ctx context.Context, c contact.Contact) error {
	query := `
		UPDATE contacts SET name = $2, email = $3, message = $4, received = $5, read = $6
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Email, c.Message, c.Received, c.Read)
	if err != nil {
		return apperror.NewInternal("failed to update contact", err)
	}
	return nil
}

func (r *postgresContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete contact", err)
	}
	return nil
}

// List returns most-recent-first, matching the prepend order the store
// applies optimistically.
func (r *postgresContactRepo) List(ctx context.Context) ([]contact.Contact, error) {
	builder := psql.Select("id, name, email, message, received, read").
		From("contacts").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build contact list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contacts", err)
	}
	defer rows.Close()

	items := make([]contact.Contact, 0)
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Received, &c.Read); err != nil {
			return nil, apperror.NewInternal("failed to scan contact row", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact rows", err)
	}
	return items, nil
}
