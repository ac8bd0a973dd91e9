package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/project"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func (r *postgresProjectRepo) Insert(ctx context.Context, p project.Project) error {
	query := `
		INSERT INTO projects
			(id, title, description, image_url, link, introduction, technologies, features, report_url, ongoing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.ImageURL, p.Link, p.Introduction,
		p.Technologies, p.Features, p.ReportURL, p.Ongoing,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, image_url = $4, link = $5, introduction = $6,
			technologies = $7, features = $8, report_url = $9, ongoing = $10
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.ImageURL, p.Link, p.Introduction,
		p.Technologies, p.Features, p.ReportURL, p.Ongoing,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	return nil
}

func (r *postgresProjectRepo) List(ctx context.Context, ongoing bool) ([]project.Project, error) {
	builder := psql.Select("id, title, description, image_url, link, introduction, technologies, features, report_url, ongoing").
		From("projects").
		Where(sq.Eq{"ongoing": ongoing}).
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	items := make([]project.Project, 0)
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Link, &p.Introduction,
			&p.Technologies, &p.Features, &p.ReportURL, &p.Ongoing,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return items, nil
}
