package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OngoingStatus string

const (
	StatusOngoing   OngoingStatus = "ONGOING"
	StatusCompleted OngoingStatus = "COMPLETED"
)

func (s OngoingStatus) Valid() bool {
	return s == StatusOngoing || s == StatusCompleted
}

type JobType string

const (
	JobTypeRemote    JobType = "REMOTE"
	JobTypeOffline   JobType = "OFFLINE"
	JobTypeHybrid    JobType = "HYBRID"
	JobTypeFreelance JobType = "FREELANCE"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeRemote, JobTypeOffline, JobTypeHybrid, JobTypeFreelance:
		return true
	}
	return false
}

// Experience is one work-history entry. EndDate is nil while the
// position is ongoing.
type Experience struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"userId"`
	CompanyName    string        `json:"companyName"`
	JobTitle       string        `json:"jobTitle"`
	JobDescription string        `json:"jobDescription"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        *time.Time    `json:"endDate"`
	IsOngoing      OngoingStatus `json:"isOngoing"`
	JobType        JobType       `json:"jobType"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// Column names accepted by Repository.UpdateFields.
const (
	ColCompanyName    = "company_name"
	ColJobTitle       = "job_title"
	ColJobDescription = "job_description"
	ColStartDate      = "start_date"
	ColEndDate        = "end_date"
	ColIsOngoing      = "is_ongoing"
	ColJobType        = "job_type"
)

type Repository interface {
	Save(ctx context.Context, exp *Experience) error
	// FindByID is scoped to the owning user: a row owned by someone
	// else behaves exactly like a missing row.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Experience, error)
	// ListByUser returns the user's experiences newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Experience, error)
	UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]any) (*Experience, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
