package dtos

import (
	"time"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

type ApplyRequest struct {
	JobID       uint   `form:"job" binding:"required"`
	CoverLetter string `form:"cover_letter"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationListQuery covers the freelancer's list endpoint. Ordering
// accepts only created_at / -created_at; anything else falls back to
// newest-first.
type ApplicationListQuery struct {
	Status   string `form:"status"`
	Ordering string `form:"ordering"`
}

type ApplicationResponse struct {
	ID               uint      `json:"id"`
	JobID            uint      `json:"job_id"`
	JobTitle         string    `json:"job_title"`
	FreelancerUserID uint      `json:"freelancer_user_id"`
	RecruiterUserID  uint      `json:"recruiter_user_id"`
	RecruiterCompany string    `json:"recruiter_company"`
	FreelancerEmail  string    `json:"freelancer_email"`
	FreelancerName   string    `json:"freelancer_name"`
	ResumeURL        string    `json:"resume_url,omitempty"`
	Status           string    `json:"status"`
	CoverLetter      string    `json:"cover_letter"`
	CreatedAt        time.Time `json:"created_at"`
	// HasBeenReviewed is only meaningful when the requester is the
	// freelancer; nil otherwise.
	HasBeenReviewed      *bool `json:"has_been_reviewed"`
	RecruiterHasReviewed bool  `json:"recruiter_has_reviewed"`
}

// ApplicationProjection carries the per-row computed fields the service
// resolves before serialization.
type ApplicationProjection struct {
	HasBeenReviewed      *bool
	RecruiterHasReviewed bool
}

// NewApplicationResponse projects an application (with Job, Job.Recruiter
// and Freelancer preloaded) into its API shape.
func NewApplicationResponse(app *models.Application, proj ApplicationProjection, mediaURL func(string) string) ApplicationResponse {
	return ApplicationResponse{
		ID:                   app.ID,
		JobID:                app.JobID,
		JobTitle:             app.Job.Title,
		FreelancerUserID:     app.FreelancerID,
		RecruiterUserID:      app.Job.RecruiterID,
		RecruiterCompany:     recruiterCompany(&app.Job.Recruiter),
		FreelancerEmail:      app.Freelancer.Email,
		FreelancerName:       freelancerName(&app.Freelancer),
		ResumeURL:            mediaURL(app.Resume),
		Status:               app.Status,
		CoverLetter:          app.CoverLetter,
		CreatedAt:            app.CreatedAt,
		HasBeenReviewed:      proj.HasBeenReviewed,
		RecruiterHasReviewed: proj.RecruiterHasReviewed,
	}
}

// recruiterCompany falls back to the recruiter's email when no company
// name is on file.
func recruiterCompany(u *models.User) string {
	if u.RecruiterProfile != nil && u.RecruiterProfile.CompanyName != "" {
		return u.RecruiterProfile.CompanyName
	}
	return u.Email
}

// freelancerName falls back to the account email when the profile has no
// display name.
func freelancerName(u *models.User) string {
	if u.FreelancerProfile != nil && u.FreelancerProfile.Name != "" {
		return u.FreelancerProfile.Name
	}
	return u.Email
}
