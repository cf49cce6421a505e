package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	domain "github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type ExperienceRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	expRepo     domain.Repository
	userRepo    user.Repository
	testUser    uuid.UUID
}

func (s *ExperienceRepoIntegrationTestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	s.dbPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgx pool: %s", err)
	}

	s.testLogger = logger.NewZapLogger("development")
	s.expRepo = NewPostgresExperienceRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool, s.testLogger)

	s.testUser = uuid.New()
	_, err = s.dbPool.Exec(ctx,
		`INSERT INTO users (id, name, username, email) VALUES ($1, $2, $3, $4)`,
		s.testUser, "Integration Tester", "integration_tester", "integration@example.com",
	)
	if err != nil {
		s.T().Fatalf("Failed to seed user: %s", err)
	}
}

func (s *ExperienceRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Logf("failed to terminate container: %s", err)
		}
	}
}

func (s *ExperienceRepoIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(), `DELETE FROM user_experiences`)
	s.Require().NoError(err)
}

func (s *ExperienceRepoIntegrationTestSuite) newExperience(company string, createdAt time.Time) *domain.Experience {
	return &domain.Experience{
		ID:             uuid.New(),
		UserID:         s.testUser,
		CompanyName:    company,
		JobTitle:       "Engineer",
		JobDescription: "Worked on things",
		StartDate:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		IsOngoing:      domain.StatusCompleted,
		JobType:        domain.JobTypeRemote,
		CreatedAt:      createdAt,
	}
}

func (s *ExperienceRepoIntegrationTestSuite) TestListByUserOrdersNewestFirst() {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.Require().NoError(s.expRepo.Save(ctx, s.newExperience("First", base)))
	s.Require().NoError(s.expRepo.Save(ctx, s.newExperience("Second", base.Add(time.Hour))))
	s.Require().NoError(s.expRepo.Save(ctx, s.newExperience("Third", base.Add(2*time.Hour))))

	list, err := s.expRepo.ListByUser(ctx, s.testUser)
	s.Require().NoError(err)
	s.Require().Len(list, 3)

	for i := 0; i < len(list)-1; i++ {
		s.False(list[i].CreatedAt.Before(list[i+1].CreatedAt))
	}
	s.Equal("Third", list[0].CompanyName)
}

func (s *ExperienceRepoIntegrationTestSuite) TestUpdateFieldsScopedToOwner() {
	ctx := context.Background()
	exp := s.newExperience("Acme", time.Now().UTC())
	s.Require().NoError(s.expRepo.Save(ctx, exp))

	stranger := uuid.New()
	_, err := s.expRepo.UpdateFields(ctx, exp.ID, stranger, map[string]any{
		domain.ColJobTitle: "Hijacked",
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)

	kept, err := s.expRepo.FindByID(ctx, exp.ID, s.testUser)
	s.Require().NoError(err)
	s.Equal("Engineer", kept.JobTitle)
}

func (s *ExperienceRepoIntegrationTestSuite) TestDeleteScopedToOwner() {
	ctx := context.Background()
	exp := s.newExperience("Acme", time.Now().UTC())
	s.Require().NoError(s.expRepo.Save(ctx, exp))

	stranger := uuid.New()
	err := s.expRepo.Delete(ctx, exp.ID, stranger)
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)

	s.Require().NoError(s.expRepo.Delete(ctx, exp.ID, s.testUser))

	_, err = s.expRepo.FindByID(ctx, exp.ID, s.testUser)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ExperienceRepoIntegrationTestSuite) TestUpdateFieldsReturnsUpdatedRow() {
	ctx := context.Background()
	exp := s.newExperience("Acme", time.Now().UTC())
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	exp.EndDate = &end
	s.Require().NoError(s.expRepo.Save(ctx, exp))

	updated, err := s.expRepo.UpdateFields(ctx, exp.ID, s.testUser, map[string]any{
		domain.ColIsOngoing: domain.StatusOngoing,
		domain.ColEndDate:   nil,
	})
	s.Require().NoError(err)
	s.Equal(domain.StatusOngoing, updated.IsOngoing)
	s.Nil(updated.EndDate)
}

func (s *ExperienceRepoIntegrationTestSuite) TestUserPartialUpdateKeepsOtherColumns() {
	ctx := context.Background()

	updated, err := s.userRepo.UpdateFields(ctx, s.testUser, map[string]any{
		user.ColHeadline: "Platform Engineer",
	})
	s.Require().NoError(err)
	s.Require().NotNil(updated.Headline)
	s.Equal("Platform Engineer", *updated.Headline)
	s.Equal("Integration Tester", updated.Name)
	s.Equal("integration_tester", updated.Username)
}

func TestExperienceRepoIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ExperienceRepoIntegrationTestSuite))
}
