package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/certification"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

func (r *postgresCertificationRepo) Insert(ctx context.Context, c certification.Certification) error {
	query := `
		INSERT INTO certifications (id, name, issuer, date, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Issuer, c.Date, c.ImageURL)
	if err != nil {
		return apperror.NewInternal("failed to insert certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, c certification.Certification) error {
	query := `
		UPDATE certifications SET name = $2, issuer = $3, date = $4, image_url = $5
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Issuer, c.Date, c.ImageURL)
	if err != nil {
		return apperror.NewInternal("failed to update certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) List(ctx context.Context) ([]certification.Certification, error) {
	builder := psql.Select("id, name, issuer, date, image_url").
		From("certifications").
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build certification list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	defer rows.Close()

	items := make([]certification.Certification, 0)
	for rows.Next() {
		var c certification.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Issuer, &c.Date, &c.ImageURL); err != nil {
			return nil, apperror.NewInternal("failed to scan certification row", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return items, nil
}
