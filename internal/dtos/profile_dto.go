package dtos

import (
	"time"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

type RecruiterProfileUpdateRequest struct {
	CompanyName    *string `form:"company_name"`
	CompanyWebsite *string `form:"company_website"`
	Location       *string `form:"location"`
	About          *string `form:"about"`
	Industry       *string `form:"industry"`
	Email          *string `form:"email"`
	Phone          *string `form:"phone"`
	LinkedinURL    *string `form:"linkedin_url"`
}

type FreelancerProfileUpdateRequest struct {
	Name           *string                 `form:"name"`
	DOB            *time.Time              `form:"dob" time_format:"2006-01-02"`
	Education      *string                 `form:"education"`
	Experience     *models.ExperienceLevel `form:"experience"`
	PortfolioURL   *string                 `form:"portfolio_url"`
	Email          *string                 `form:"email"`
	Phone          *string                 `form:"phone"`
	Location       *string                 `form:"location"`
	GithubURL      *string                 `form:"github_url"`
	LinkedinURL    *string                 `form:"linkedin_url"`
	ExpectedSalary *float64                `form:"expected_salary"`
	Availability   *models.Availability    `form:"availability"`
	SkillIDs       []uint                  `form:"skill_ids"`
}

type RecruiterProfileResponse struct {
	UserID         uint     `json:"user_id"`
	CompanyName    string   `json:"company_name"`
	CompanyWebsite string   `json:"company_website"`
	Location       string   `json:"location"`
	About          string   `json:"about"`
	Industry       string   `json:"industry"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	LinkedinURL    string   `json:"linkedin_url"`
	CompanyLogoURL string   `json:"company_logo_url,omitempty"`
	AverageRating  *float64 `json:"average_rating"`
}

func NewRecruiterProfileResponse(p *models.RecruiterProfile, avgRating *float64, mediaURL func(string) string) RecruiterProfileResponse {
	return RecruiterProfileResponse{
		UserID:         p.UserID,
		CompanyName:    p.CompanyName,
		CompanyWebsite: p.CompanyWebsite,
		Location:       p.Location,
		About:          p.About,
		Industry:       p.Industry,
		Email:          p.Email,
		Phone:          p.Phone,
		LinkedinURL:    p.LinkedinURL,
		CompanyLogoURL: mediaURL(p.CompanyLogo),
		AverageRating:  avgRating,
	}
}

type FreelancerProfileResponse struct {
	UserID              uint                   `json:"user_id"`
	Name                string                 `json:"name"`
	DOB                 *time.Time             `json:"dob"`
	Education           string                 `json:"education"`
	Experience          models.ExperienceLevel `json:"experience"`
	ExperienceDisplay   string                 `json:"experience_display"`
	Skills              []models.Skill         `json:"skills"`
	PortfolioURL        string                 `json:"portfolio_url"`
	ResumeURL           string                 `json:"resume_url,omitempty"`
	Email               string                 `json:"email"`
	Phone               string                 `json:"phone"`
	Location            string                 `json:"location"`
	GithubURL           string                 `json:"github_url"`
	LinkedinURL         string                 `json:"linkedin_url"`
	ExpectedSalary      float64                `json:"expected_salary"`
	Availability        models.Availability    `json:"availability"`
	AvailabilityDisplay string                 `json:"availability_display"`
	ProfilePicURL       string                 `json:"profilepic_url,omitempty"`
	AverageRating       *float64               `json:"average_rating"`
}

func NewFreelancerProfileResponse(p *models.FreelancerProfile, avgRating *float64, mediaURL func(string) string) FreelancerProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []models.Skill{}
	}
	return FreelancerProfileResponse{
		UserID:              p.UserID,
		Name:                p.Name,
		DOB:                 p.DOB,
		Education:           p.Education,
		Experience:          p.Experience,
		ExperienceDisplay:   p.Experience.Display(),
		Skills:              skills,
		PortfolioURL:        p.PortfolioURL,
		ResumeURL:           mediaURL(p.Resume),
		Email:               p.Email,
		Phone:               p.Phone,
		Location:            p.Location,
		GithubURL:           p.GithubURL,
		LinkedinURL:         p.LinkedinURL,
		ExpectedSalary:      p.ExpectedSalary,
		Availability:        p.Availability,
		AvailabilityDisplay: p.Availability.Display(),
		ProfilePicURL:       mediaURL(p.ProfilePic),
		AverageRating:       avgRating,
	}
}

type CompanyResponse struct {
	CompanyName    string `json:"company_name"`
	Industry       string `json:"industry"`
	Location       string `json:"location"`
	CompanyLogoURL string `json:"company_logo_url,omitempty"`
}

func NewCompanyResponse(p *models.RecruiterProfile, mediaURL func(string) string) CompanyResponse {
	return CompanyResponse{
		CompanyName:    p.CompanyName,
		Industry:       p.Industry,
		Location:       p.Location,
		CompanyLogoURL: mediaURL(p.CompanyLogo),
	}
}

type TopFreelancerResponse struct {
	Name              string  `json:"name"`
	ExperienceDisplay string  `json:"experience_display"`
	ProfilePicURL     string  `json:"profilepic_url,omitempty"`
	AverageRating     float64 `json:"average_rating"`
}

func NewTopFreelancerResponse(p *models.FreelancerProfile, avgRating float64, mediaURL func(string) string) TopFreelancerResponse {
	return TopFreelancerResponse{
		Name:              p.Name,
		ExperienceDisplay: p.Experience.Display(),
		ProfilePicURL:     mediaURL(p.ProfilePic),
		AverageRating:     avgRating,
	}
}
