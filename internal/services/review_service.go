package services

import (
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// CanSubmitReview reports whether an accepted application links reviewer
// and reviewee on the named job. Checked in both role directions: the
// freelancer reviewing the job's recruiter, or the recruiter reviewing an
// applicant.
func (s *ReviewService) CanSubmitReview(reviewer *models.User, jobID, revieweeID uint) bool {
	var count int64

	switch reviewer.Role {
	case models.RoleFreelancer:
		s.DB.Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("applications.job_id = ? AND applications.freelancer_id = ? AND jobs.recruiter_id = ? AND applications.status = ?",
				jobID, reviewer.ID, revieweeID, models.ApplicationStatusAccepted).
			Count(&count)
	case models.RoleRecruiter:
		s.DB.Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("applications.job_id = ? AND jobs.recruiter_id = ? AND applications.freelancer_id = ? AND applications.status = ?",
				jobID, reviewer.ID, revieweeID, models.ApplicationStatusAccepted).
			Count(&count)
	}
	return count > 0
}

// Create validates eligibility and persists the review.
func (s *ReviewService) Create(reviewer *models.User, req *dtos.ReviewCreateRequest) (*models.Review, error) {
	if req.RevieweeID == reviewer.ID {
		return nil, apierr.ErrBadRequest("you cannot review yourself")
	}

	if !s.CanSubmitReview(reviewer, req.JobID, req.RevieweeID) {
		return nil, apierr.ErrForbidden("you can only submit a review for a job application that has been accepted")
	}

	var existing int64
	s.DB.Model(&models.Review{}).
		Where("job_id = ? AND reviewer_id = ? AND reviewee_id = ?", req.JobID, reviewer.ID, req.RevieweeID).
		Count(&existing)
	if existing > 0 {
		return nil, apierr.ErrConflict("you have already reviewed this user for this job")
	}

	review := &models.Review{
		JobID:      req.JobID,
		ReviewerID: reviewer.ID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.DB.Create(review).Error; err != nil {
		return nil, err
	}
	return s.get(review.ID)
}

func (s *ReviewService) get(id uint) (*models.Review, error) {
	var review models.Review
	err := s.DB.
		Preload("Reviewer").
		Preload("Reviewer.RecruiterProfile").
		Preload("Reviewer.FreelancerProfile").
		First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListForUser returns all reviews received by the user.
func (s *ReviewService) ListForUser(revieweeID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.
		Preload("Reviewer").
		Preload("Reviewer.RecruiterProfile").
		Preload("Reviewer.FreelancerProfile").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// AverageRating computes the mean rating received by a user, or nil when
// the user has no reviews.
func (s *ReviewService) AverageRating(userID uint) *float64 {
	var avg *float64
	s.DB.Model(&models.Review{}).
		Where("reviewee_id = ?", userID).
		Select("AVG(rating)").
		Scan(&avg)
	return avg
}
