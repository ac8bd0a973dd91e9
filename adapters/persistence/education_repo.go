package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/education"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresEducationRepo) Insert(ctx context.Context, e education.Education) error {
	query := `
		INSERT INTO education (id, school, degree, period, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, e.ID, e.School, e.Degree, e.Period)
	if err != nil {
		return apperror.NewInternal("failed to insert education entry", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e education.Education) error {
	query := `
		UPDATE education SET school = $2, degree = $3, period = $4
		WHERE id = $1
	`
	// Zero rows affected is not an error: updating an id that was already
	// removed is defined as a no-op.
	_, err := r.db.Exec(ctx, query, e.ID, e.School, e.Degree, e.Period)
	if err != nil {
		return apperror.NewInternal("failed to update education entry", err)
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education entry", err)
	}
	return nil
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]education.Education, error) {
	builder := psql.Select("id, school, degree, period").
		From("education").
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education entries", err)
	}
	defer rows.Close()

	entries := make([]education.Education, 0)
	for rows.Next() {
		var e education.Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.Period); err != nil {
			return nil, apperror.NewInternal("failed to scan education row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}
