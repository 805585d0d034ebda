package dtos

import (
	"time"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

type ReviewCreateRequest struct {
	JobID      uint   `json:"job" binding:"required"`
	RevieweeID uint   `json:"reviewee" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

type ReviewResponse struct {
	ID           uint      `json:"id"`
	JobID        uint      `json:"job_id"`
	ReviewerID   uint      `json:"reviewer_id"`
	RevieweeID   uint      `json:"reviewee_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewReviewResponse projects a review (with Reviewer and its profiles
// preloaded) into its API shape. The reviewer label prefers company name
// for recruiters and profile name for freelancers, falling back to the
// username.
func NewReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		JobID:        r.JobID,
		ReviewerID:   r.ReviewerID,
		RevieweeID:   r.RevieweeID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewerName: reviewerDisplayName(&r.Reviewer),
		CreatedAt:    r.CreatedAt,
	}
}

func reviewerDisplayName(u *models.User) string {
	switch u.Role {
	case models.RoleRecruiter:
		if u.RecruiterProfile != nil && u.RecruiterProfile.CompanyName != "" {
			return u.RecruiterProfile.CompanyName
		}
	case models.RoleFreelancer:
		if u.FreelancerProfile != nil && u.FreelancerProfile.Name != "" {
			return u.FreelancerProfile.Name
		}
	}
	return u.Username
}
