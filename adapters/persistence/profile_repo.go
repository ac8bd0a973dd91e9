package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/profile"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT name, avatar, title, about, cv_url, updated_at
		FROM profile
		WHERE id = 1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.Name,
		&p.Avatar,
		&p.Title,
		&p.About,
		&p.CVUrl,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "singleton")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profile (id, name, avatar, title, about, cv_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			avatar = EXCLUDED.avatar,
			title = EXCLUDED.title,
			about = EXCLUDED.about,
			cv_url = EXCLUDED.cv_url,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, p.Name, p.Avatar, p.Title, p.About, p.CVUrl)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
