package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply submits a freelancer's application. When no resume is uploaded the
// profile's on-file resume is attached instead, and the job's recruiter is
// notified.
func (s *ApplicationService) Apply(freelancerID uint, req *dtos.ApplyRequest, resume string) (*models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, req.JobID).Error; err != nil {
		return nil, err
	}

	var existing int64
	s.DB.Model(&models.Application{}).
		Where("job_id = ? AND freelancer_id = ?", req.JobID, freelancerID).
		Count(&existing)
	if existing > 0 {
		return nil, apierr.ErrConflict("you have already applied to this job")
	}

	var profile models.FreelancerProfile
	profileErr := s.DB.Where("user_id = ?", freelancerID).First(&profile).Error
	if profileErr != nil && !errors.Is(profileErr, gorm.ErrRecordNotFound) {
		return nil, profileErr
	}

	if resume == "" && profileErr == nil {
		resume = profile.Resume
	}

	app := &models.Application{
		JobID:        req.JobID,
		FreelancerID: freelancerID,
		CoverLetter:  req.CoverLetter,
		Resume:       resume,
		Status:       models.ApplicationStatusApplied,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}

	freelancerName := profile.Name
	if freelancerName == "" {
		var user models.User
		if err := s.DB.First(&user, freelancerID).Error; err == nil {
			freelancerName = user.Username
		}
	}

	meta, err := json.Marshal(map[string]uint{
		"job_id":         job.ID,
		"application_id": app.ID,
	})
	if err != nil {
		return nil, err
	}

	notification := models.Notification{
		UserID:  job.RecruiterID,
		Message: fmt.Sprintf("You have a new application from %s for '%s'.", freelancerName, job.Title),
		Data:    datatypes.JSON(meta),
	}
	if err := s.DB.Create(&notification).Error; err != nil {
		return nil, err
	}

	return s.get(app.ID)
}

func (s *ApplicationService) get(id uint) (*models.Application, error) {
	var app models.Application
	err := s.preloaded().First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) preloaded() *gorm.DB {
	return s.DB.
		Preload("Job").
		Preload("Job.Recruiter").
		Preload("Job.Recruiter.RecruiterProfile").
		Preload("Freelancer").
		Preload("Freelancer.FreelancerProfile")
}

// ListMine returns the freelancer's applications, optionally filtered by
// status. Only created_at / -created_at orderings are honored; the default
// is newest-first.
func (s *ApplicationService) ListMine(freelancerID uint, query *dtos.ApplicationListQuery) ([]models.Application, error) {
	q := s.preloaded().Where("freelancer_id = ?", freelancerID)

	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}

	switch query.Ordering {
	case "created_at":
		q = q.Order("created_at ASC")
	default:
		q = q.Order("created_at DESC")
	}

	var apps []models.Application
	err := q.Find(&apps).Error
	return apps, err
}

// ListForRecruiter returns applications across all jobs the recruiter owns.
func (s *ApplicationService) ListForRecruiter(recruiterID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.preloaded().
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).
		Order("applications.created_at DESC").
		Find(&apps).Error
	return apps, err
}

// GetOwnedByRecruiter fetches an application scoped to the owning
// recruiter's jobs; anything else reads as not found.
func (s *ApplicationService) GetOwnedByRecruiter(recruiterID, id uint) (*models.Application, error) {
	var app models.Application
	err := s.preloaded().
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).
		First(&app, "applications.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus transitions an application's status. Only the owning
// recruiter may do so, and only applied -> accepted | rejected is legal.
func (s *ApplicationService) UpdateStatus(recruiterID, id uint, status string) (*models.Application, error) {
	app, err := s.GetOwnedByRecruiter(recruiterID, id)
	if err != nil {
		return nil, err
	}

	if !models.ValidStatusTransition(app.Status, status) {
		return nil, apierr.ErrBadRequest(
			fmt.Sprintf("cannot transition application from %q to %q", app.Status, status))
	}

	if err := s.DB.Model(&models.Application{}).
		Where("id = ?", app.ID).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}

// Project resolves the computed review flags for an application row, from
// the requester's point of view.
func (s *ApplicationService) Project(app *models.Application, requesterID uint, requesterRole models.Role) dtos.ApplicationProjection {
	proj := dtos.ApplicationProjection{}

	if requesterRole == models.RoleFreelancer {
		var count int64
		s.DB.Model(&models.Review{}).
			Where("job_id = ? AND reviewer_id = ?", app.JobID, requesterID).
			Count(&count)
		reviewed := count > 0
		proj.HasBeenReviewed = &reviewed
	}

	var count int64
	s.DB.Model(&models.Review{}).
		Where("job_id = ? AND reviewer_id = ? AND reviewee_id = ?",
			app.JobID, app.Job.RecruiterID, app.FreelancerID).
		Count(&count)
	proj.RecruiterHasReviewed = count > 0

	return proj
}
