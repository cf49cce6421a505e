package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

var psqlUser = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, name, username, email, headline, user_info, profile_url, banner_url, resume,
	github_url, linkedin_url, leetcode_url, codeforces_url, medium_url, portfolio_url`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Headline,
		&u.UserInfo,
		&u.ProfileURL,
		&u.BannerURL,
		&u.Resume,
		&u.GithubURL,
		&u.LinkedinURL,
		&u.LeetcodeURL,
		&u.CodeForcesURL,
		&u.MediumURL,
		&u.PortfolioURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", "")
		}
		return nil, apperror.NewInternal("failed to scan user row", err)
	}
	return u, nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	return scanUser(row)
}

func (r *postgresUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*user.User, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	builder := psqlUser.Update("users").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build user update query", err)
	}

	row := r.db.QueryRow(ctx, sql, args...)
	return scanUser(row)
}
