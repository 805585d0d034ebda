package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

func TestApplyAttachesProfileResumeAndNotifiesRecruiter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	profile := createFreelancerProfile(t, db, freelancer.ID)
	require.NoError(t, db.Model(profile).Updates(map[string]any{
		"name":   "Ada",
		"resume": "resumes/on-file.pdf",
	}).Error)
	job := createJob(t, db, recruiter.ID, "Backend Dev")

	app, err := svc.Apply(freelancer.ID, &dtos.ApplyRequest{
		JobID:       job.ID,
		CoverLetter: "hello",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, "resumes/on-file.pdf", app.Resume)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", recruiter.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "You have a new application from Ada for 'Backend Dev'.", notifications[0].Message)

	var meta map[string]uint
	require.NoError(t, json.Unmarshal(notifications[0].Data, &meta))
	assert.Equal(t, job.ID, meta["job_id"])
	assert.Equal(t, app.ID, meta["application_id"])
}

func TestApplyUploadedResumeWinsOverProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	profile := createFreelancerProfile(t, db, freelancer.ID)
	require.NoError(t, db.Model(profile).Update("resume", "resumes/on-file.pdf").Error)
	job := createJob(t, db, recruiter.ID, "Backend Dev")

	app, err := svc.Apply(freelancer.ID, &dtos.ApplyRequest{JobID: job.ID}, "resumes/uploaded.pdf")
	require.NoError(t, err)
	assert.Equal(t, "resumes/uploaded.pdf", app.Resume)
}

func TestApplyDuplicateConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	job := createJob(t, db, recruiter.ID, "Backend Dev")

	_, err := svc.Apply(freelancer.ID, &dtos.ApplyRequest{JobID: job.ID}, "")
	require.NoError(t, err)

	_, err = svc.Apply(freelancer.ID, &dtos.ApplyRequest{JobID: job.ID}, "")
	var ae *apierr.ApiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 409, ae.Code)
}

func TestApplyMissingJobIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)

	_, err := svc.Apply(freelancer.ID, &dtos.ApplyRequest{JobID: 999}, "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListMineStatusFilterAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)

	first := createApplication(t, db, createJob(t, db, recruiter.ID, "First").ID,
		freelancer.ID, models.ApplicationStatusApplied)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	createApplication(t, db, createJob(t, db, recruiter.ID, "Second").ID,
		freelancer.ID, models.ApplicationStatusAccepted)

	apps, err := svc.ListMine(freelancer.ID, &dtos.ApplicationListQuery{})
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "Second", apps[0].Job.Title)

	apps, err = svc.ListMine(freelancer.ID, &dtos.ApplicationListQuery{Ordering: "created_at"})
	require.NoError(t, err)
	assert.Equal(t, "First", apps[0].Job.Title)

	// Unknown orderings fall back to newest-first.
	apps, err = svc.ListMine(freelancer.ID, &dtos.ApplicationListQuery{Ordering: "resume"})
	require.NoError(t, err)
	assert.Equal(t, "Second", apps[0].Job.Title)

	apps, err = svc.ListMine(freelancer.ID, &dtos.ApplicationListQuery{Status: models.ApplicationStatusAccepted})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Second", apps[0].Job.Title)
}

func TestListForRecruiterOnlyOwnJobs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	mine := createUser(t, db, "r1@x.com", "r1", models.RoleRecruiter)
	other := createUser(t, db, "r2@x.com", "r2", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)

	myJob := createJob(t, db, mine.ID, "Mine")
	otherJob := createJob(t, db, other.ID, "Theirs")
	createApplication(t, db, myJob.ID, freelancer.ID, models.ApplicationStatusApplied)
	createApplication(t, db, otherJob.ID, freelancer.ID, models.ApplicationStatusApplied)

	apps, err := svc.ListForRecruiter(mine.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Mine", apps[0].Job.Title)
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	job := createJob(t, db, recruiter.ID, "Backend Dev")
	app := createApplication(t, db, job.ID, freelancer.ID, models.ApplicationStatusApplied)

	updated, err := svc.UpdateStatus(recruiter.ID, app.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	// Accepted is terminal.
	_, err = svc.UpdateStatus(recruiter.ID, app.ID, models.ApplicationStatusRejected)
	var ae *apierr.ApiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Code)
}

func TestUpdateStatusRejectsUnknownStatusAndForeignApplication(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	recruiter := createUser(t, db, "r1@x.com", "r1", models.RoleRecruiter)
	stranger := createUser(t, db, "r2@x.com", "r2", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	job := createJob(t, db, recruiter.ID, "Backend Dev")
	app := createApplication(t, db, job.ID, freelancer.ID, models.ApplicationStatusApplied)

	_, err := svc.UpdateStatus(recruiter.ID, app.ID, "withdrawn")
	var ae *apierr.ApiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Code)

	// Another recruiter's application reads as missing.
	_, err = svc.UpdateStatus(stranger.ID, app.ID, models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectReviewFlags(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db)
	recruiter := createUser(t, db, "r@x.com", "rec", models.RoleRecruiter)
	freelancer := createUser(t, db, "f@x.com", "free", models.RoleFreelancer)
	job := createJob(t, db, recruiter.ID, "Backend Dev")
	created := createApplication(t, db, job.ID, freelancer.ID, models.ApplicationStatusAccepted)

	app, err := svc.GetOwnedByRecruiter(recruiter.ID, created.ID)
	require.NoError(t, err)

	proj := svc.Project(app, freelancer.ID, models.RoleFreelancer)
	require.NotNil(t, proj.HasBeenReviewed)
	assert.False(t, *proj.HasBeenReviewed)
	assert.False(t, proj.RecruiterHasReviewed)

	// The flag is meaningless from the recruiter's side, so it stays nil.
	proj = svc.Project(app, recruiter.ID, models.RoleRecruiter)
	assert.Nil(t, proj.HasBeenReviewed)

	require.NoError(t, db.Create(&models.Review{
		JobID: job.ID, ReviewerID: freelancer.ID, RevieweeID: recruiter.ID, Rating: 5,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		JobID: job.ID, ReviewerID: recruiter.ID, RevieweeID: freelancer.ID, Rating: 4,
	}).Error)

	proj = svc.Project(app, freelancer.ID, models.RoleFreelancer)
	require.NotNil(t, proj.HasBeenReviewed)
	assert.True(t, *proj.HasBeenReviewed)
	assert.True(t, proj.RecruiterHasReviewed)
}
