package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/internship"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type postgresInternshipRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresInternshipRepo(db *pgxpool.Pool, logger logger.Logger) internship.Repository {
	return &postgresInternshipRepo{db: db, logger: logger}
}

func (r *postgresInternshipRepo) Insert(ctx context.Context, i internship.Internship) error {
	query := `
		INSERT INTO internships
			(id, company, role, start_date, end_date, location, description, memories, images, certificate_url, report_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.Company, i.Role, i.StartDate, i.EndDate, i.Location,
		i.Description, i.Memories, i.Images, i.CertificateURL, i.ReportURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert internship", err)
	}
	return nil
}

func (r *postgresInternshipRepo) Update(ctx context.Context, i internship.Internship) error {
	query := `
		UPDATE internships SET
			company = $2, role = $3, start_date = $4, end_date = $5, location = $6,
			description = $7, memories = $8, images = $9, certificate_url = $10, report_url = $11
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.Company, i.Role, i.StartDate, i.EndDate, i.Location,
		i.Description, i.Memories, i.Images, i.CertificateURL, i.ReportURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to update internship", err)
	}
	return nil
}

func (r *postgresInternshipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete internship", err)
	}
	return nil
}

func (r *postgresInternshipRepo) List(ctx context.Context) ([]internship.Internship, error) {
	builder := psql.Select("id, company, role, start_date, end_date, location, description, memories, images, certificate_url, report_url").
		From("internships").
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build internship list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query internships", err)
	}
	defer rows.Close()

	items := make([]internship.Internship, 0)
	for rows.Next() {
		var i internship.Internship
		if err := rows.Scan(
			&i.ID, &i.Company, &i.Role, &i.StartDate, &i.EndDate, &i.Location,
			&i.Description, &i.Memories, &i.Images, &i.CertificateURL, &i.ReportURL,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan internship row", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating internship rows", err)
	}
	return items, nil
}
