package user

import (
	"context"

	"github.com/google/uuid"
)

// User is the profile-facing slice of the account record. Accounts are
// created by the registration service; this subsystem only mutates
// profile columns field by field.
type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Headline      *string   `json:"headline"`
	UserInfo      *string   `json:"userInfo"`
	ProfileURL    *string   `json:"profileUrl"`
	BannerURL     *string   `json:"bannerUrl"`
	Resume        *string   `json:"resume"`
	GithubURL     *string   `json:"githubUrl"`
	LinkedinURL   *string   `json:"linkedinUrl"`
	LeetcodeURL   *string   `json:"leetcodeUrl"`
	CodeForcesURL *string   `json:"codeForcesUrl"`
	MediumURL     *string   `json:"mediumUrl"`
	PortfolioURL  *string   `json:"portfolioUrl"`
}

// Column names accepted by Repository.UpdateFields.
const (
	ColName          = "name"
	ColHeadline      = "headline"
	ColUserInfo      = "user_info"
	ColProfileURL    = "profile_url"
	ColBannerURL     = "banner_url"
	ColResume        = "resume"
	ColGithubURL     = "github_url"
	ColLinkedinURL   = "linkedin_url"
	ColLeetcodeURL   = "leetcode_url"
	ColCodeForcesURL = "codeforces_url"
	ColMediumURL     = "medium_url"
	ColPortfolioURL  = "portfolio_url"
)

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// UpdateFields applies a column->value map to a single row and
	// returns the updated record. Columns absent from the map keep
	// their stored values.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*User, error)
}
