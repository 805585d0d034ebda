package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

// acceptedPairing seeds a recruiter, a freelancer and an accepted
// application linking them on one job.
func acceptedPairing(t *testing.T, db *gorm.DB) (*models.User, *models.User, *models.Job) {
	t.Helper()
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	job := createJob(t, db, recruiter.ID, "Backend Dev")
	createApplication(t, db, job.ID, freelancer.ID, models.ApplicationStatusAccepted)
	return recruiter, freelancer, job
}

func TestReviewRejectsSelfReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)

	_, err := svc.Create(freelancer, &dtos.ReviewCreateRequest{
		JobID: 1, RevieweeID: freelancer.ID, Rating: 5,
	})
	var ae *apierr.ApiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Code)
}

func TestReviewRequiresAcceptedApplication(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	job := createJob(t, db, recruiter.ID, "Backend Dev")
	createApplication(t, db, job.ID, freelancer.ID, models.ApplicationStatusApplied)

	// A pending application does not unlock reviews.
	_, err := svc.Create(freelancer, &dtos.ReviewCreateRequest{
		JobID: job.ID, RevieweeID: recruiter.ID, Rating: 5,
	})
	var ae *apierr.ApiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 403, ae.Code)
}

func TestReviewBothDirectionsOnAcceptedApplication(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	recruiter, freelancer, job := acceptedPairing(t, db)

	review, err := svc.Create(freelancer, &dtos.ReviewCreateRequest{
		JobID: job.ID, RevieweeID: recruiter.ID, Rating: 5, Comment: "great client",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	review, err = svc.Create(recruiter, &dtos.ReviewCreateRequest{
		JobID: job.ID, RevieweeID: freelancer.ID, Rating: 4, Comment: "solid work",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	recruiter, freelancer, job := acceptedPairing(t, db)

	_, err := svc.Create(freelancer, &dtos.ReviewCreateRequest{
		JobID: job.ID, RevieweeID: recruiter.ID, Rating: 5,
	})
	require.NoError(t, err)

	_, err = svc.Create(freelancer, &dtos.ReviewCreateRequest{
		JobID: job.ID, RevieweeID: recruiter.ID, Rating: 3,
	})
	var ae *apierr.ApiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 409, ae.Code)
}

func TestReviewRejectsUnrelatedReviewee(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	_, freelancer, job := acceptedPairing(t, db)
	bystander := createUser(t, db, "b@x.com", "bystander", models.RoleRecruiter)

	_, err := svc.Create(freelancer, &dtos.ReviewCreateRequest{
		JobID: job.ID, RevieweeID: bystander.ID, Rating: 5,
	})
	var ae *apierr.ApiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 403, ae.Code)
}

func TestListForUserAndAverageRating(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)

	assert.Nil(t, svc.AverageRating(freelancer.ID))

	jobA := createJob(t, db, recruiter.ID, "Job A")
	jobB := createJob(t, db, recruiter.ID, "Job B")
	require.NoError(t, db.Create(&models.Review{
		JobID: jobA.ID, ReviewerID: recruiter.ID, RevieweeID: freelancer.ID, Rating: 5,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		JobID: jobB.ID, ReviewerID: recruiter.ID, RevieweeID: freelancer.ID, Rating: 2,
	}).Error)

	reviews, err := svc.ListForUser(freelancer.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	avg := svc.AverageRating(freelancer.ID)
	require.NotNil(t, avg)
	assert.InDelta(t, 3.5, *avg, 0.001)
}
