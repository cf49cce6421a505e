package http

import (
	"fmt"
	"time"

	"github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/internal/domain/user"
)

// User / profile DTOs

type UpdateUserInfoRequest struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	UserInfo string `json:"userInfo"`
}

type UpdateUserLinksRequest struct {
	GithubURL     *string `json:"githubUrl"`
	LinkedinURL   *string `json:"linkedinUrl"`
	LeetcodeURL   *string `json:"leetcodeUrl"`
	CodeForcesURL *string `json:"codeForcesUrl"`
	MediumURL     *string `json:"mediumUrl"`
	PortfolioURL  *string `json:"portfolioUrl"`
}

type UserDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Headline      *string `json:"headline"`
	UserInfo      *string `json:"userInfo"`
	ProfileURL    *string `json:"profileUrl"`
	BannerURL     *string `json:"bannerUrl"`
	Resume        *string `json:"resume"`
	GithubURL     *string `json:"githubUrl"`
	LinkedinURL   *string `json:"linkedinUrl"`
	LeetcodeURL   *string `json:"leetcodeUrl"`
	CodeForcesURL *string `json:"codeForcesUrl"`
	MediumURL     *string `json:"mediumUrl"`
	PortfolioURL  *string `json:"portfolioUrl"`
}

type FullProfileDTO struct {
	UserDTO
	UserExperiences []ExperienceDTO `json:"userExperiences"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:            u.ID.String(),
		Name:          u.Name,
		Username:      u.Username,
		Email:         u.Email,
		Headline:      u.Headline,
		UserInfo:      u.UserInfo,
		ProfileURL:    u.ProfileURL,
		BannerURL:     u.BannerURL,
		Resume:        u.Resume,
		GithubURL:     u.GithubURL,
		LinkedinURL:   u.LinkedinURL,
		LeetcodeURL:   u.LeetcodeURL,
		CodeForcesURL: u.CodeForcesURL,
		MediumURL:     u.MediumURL,
		PortfolioURL:  u.PortfolioURL,
	}
}

func ToFullProfileDTO(u *user.User, experiences []*experience.Experience) FullProfileDTO {
	dto := FullProfileDTO{UserDTO: ToUserDTO(u)}
	dto.UserExperiences = make([]ExperienceDTO, len(experiences))
	for i, e := range experiences {
		dto.UserExperiences[i] = ToExperienceDTO(e)
	}
	return dto
}

// Experience DTOs

type AddExperienceRequest struct {
	CompanyName    string  `json:"companyName"`
	JobTitle       string  `json:"jobTitle"`
	JobDescription string  `json:"jobDescription"`
	StartDate      string  `json:"startDate"`
	EndDate        *string `json:"endDate"`
	IsOngoing      string  `json:"isOngoing"`
	JobType        string  `json:"jobType"`
}

type UpdateExperienceRequest struct {
	CompanyName    *string `json:"companyName"`
	JobTitle       *string `json:"jobTitle"`
	JobDescription *string `json:"jobDescription"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	IsOngoing      *string `json:"isOngoing"`
	JobType        *string `json:"jobType"`
}

type ExperienceDTO struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	CompanyName    string     `json:"companyName"`
	JobTitle       string     `json:"jobTitle"`
	JobDescription string     `json:"jobDescription"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	IsOngoing      string     `json:"isOngoing"`
	JobType        string     `json:"jobType"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:             e.ID.String(),
		UserID:         e.UserID.String(),
		CompanyName:    e.CompanyName,
		JobTitle:       e.JobTitle,
		JobDescription: e.JobDescription,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		IsOngoing:      string(e.IsOngoing),
		JobType:        string(e.JobType),
		CreatedAt:      e.CreatedAt,
	}
}

// parseDate accepts the RFC 3339 timestamps the API emits as well as
// the bare YYYY-MM-DD strings the date pickers post.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
