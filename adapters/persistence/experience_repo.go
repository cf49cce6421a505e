package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var psqlExperience = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const experienceColumns = `id, user_id, company_name, job_title, job_description, start_date, end_date,
	is_ongoing, job_type, created_at`

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.CompanyName,
		&e.JobTitle,
		&e.JobDescription,
		&e.StartDate,
		&e.EndDate,
		&e.IsOngoing,
		&e.JobType,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func scanExperiences(rows pgx.Rows) ([]*experience.Experience, error) {
	defer rows.Close()
	experiences := make([]*experience.Experience, 0)

	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return experiences, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO user_experiences (id, user_id, company_name, job_title, job_description, start_date, end_date, is_ongoing, job_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.UserID, e.CompanyName, e.JobTitle, e.JobDescription,
		e.StartDate, e.EndDate, e.IsOngoing, e.JobType, e.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*experience.Experience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM user_experiences
		WHERE id = $1 AND user_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, userID)
	return scanExperience(row)
}

func (r *postgresExperienceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*experience.Experience, error) {
	builder := psqlExperience.Select(experienceColumns).
		From("user_experiences").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences by user", err)
	}

	return scanExperiences(rows)
}

func (r *postgresExperienceRepo) UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]any) (*experience.Experience, error) {
	builder := psqlExperience.Update("user_experiences").
		SetMap(fields).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + experienceColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build experience update query", err)
	}

	row := r.db.QueryRow(ctx, sql, args...)
	return scanExperience(row)
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM user_experiences WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", id.String())
	}
	return nil
}
