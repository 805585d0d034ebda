package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

const (
	defaultJobListLimit = 50
	maxRecommendations  = 5
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create persists a job for the recruiter and fans out one notification to
// every freelancer whose profile shares at least one of its skills.
func (s *JobService) Create(recruiterID uint, req *dtos.JobCreationRequest, picture string) (*models.Job, error) {
	if !req.WorkMode.Valid() {
		return nil, apierr.ErrBadRequest("invalid work mode")
	}

	var skills []models.Skill
	if len(req.SkillIDs) > 0 {
		if err := s.DB.Where("id IN ?", req.SkillIDs).Find(&skills).Error; err != nil {
			return nil, err
		}
	}

	job := &models.Job{
		RecruiterID:         recruiterID,
		Title:               req.Title,
		PayPerHour:          req.PayPerHour,
		Requirements:        req.Requirements,
		WorkMode:            req.WorkMode,
		Location:            req.Location,
		KeyResponsibilities: req.KeyResponsibilities,
		Picture:             picture,
		Skills:              skills,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}

	if err := s.notifyMatchingFreelancers(job); err != nil {
		// The job is already committed; a failed fan-out should not fail
		// the request.
		slog.Error("notification fan-out failed", "job_id", job.ID, "error", err)
	}

	return s.GetOwned(recruiterID, job.ID)
}

// notifyMatchingFreelancers inserts one notification per distinct
// freelancer whose skill set intersects the job's skills.
func (s *JobService) notifyMatchingFreelancers(job *models.Job) error {
	if len(job.Skills) == 0 {
		return nil
	}
	skillIDs := make([]uint, 0, len(job.Skills))
	for _, sk := range job.Skills {
		skillIDs = append(skillIDs, sk.ID)
	}

	var userIDs []uint
	err := s.DB.Table("freelancer_profiles").
		Distinct("freelancer_profiles.user_id").
		Joins("JOIN freelancer_skills ON freelancer_skills.freelancer_profile_id = freelancer_profiles.id").
		Where("freelancer_skills.skill_id IN ?", skillIDs).
		Pluck("freelancer_profiles.user_id", &userIDs).Error
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	meta, err := json.Marshal(map[string]uint{"job_id": job.ID})
	if err != nil {
		return err
	}

	notifications := make([]models.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		notifications = append(notifications, models.Notification{
			UserID:  uid,
			Message: fmt.Sprintf("New job posted that matches your skills: '%s'", job.Title),
			Link:    fmt.Sprintf("/job-detail.html?id=%d", job.ID),
			Data:    datatypes.JSON(meta),
		})
	}
	return s.DB.Create(&notifications).Error
}

// List applies the conjunctive filter set and returns jobs newest-first.
func (s *JobService) List(filter *dtos.JobFilter) ([]models.Job, error) {
	q := s.DB.Model(&models.Job{}).
		Preload("Skills").
		Preload("Recruiter")

	if len(filter.SkillIDs) > 0 {
		q = q.Where("jobs.id IN (?)", s.DB.Table("job_skills").
			Select("job_id").
			Where("skill_id IN ?", filter.SkillIDs))
	}
	if filter.MinPay != nil {
		q = q.Where("pay_per_hour >= ?", *filter.MinPay)
	}
	if filter.MaxPay != nil {
		q = q.Where("pay_per_hour <= ?", *filter.MaxPay)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Experience != "" {
		q = q.Where("LOWER(requirements) LIKE ?", "%"+strings.ToLower(filter.Experience)+"%")
	}

	limit := filter.Limit
	if limit <= 0 || limit > defaultJobListLimit {
		limit = defaultJobListLimit
	}

	var jobs []models.Job
	err := q.Order("jobs.created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&jobs).Error
	return jobs, err
}

// ListOwned returns all jobs posted by the recruiter, newest-first.
func (s *JobService) ListOwned(recruiterID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Preload("Skills").Preload("Recruiter").
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Get fetches a job by id.
func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Skills").Preload("Recruiter").First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetOwned fetches a job scoped to its owner. A job owned by someone else
// is indistinguishable from a missing one.
func (s *JobService) GetOwned(recruiterID, id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Skills").Preload("Recruiter").
		Where("recruiter_id = ?", recruiterID).
		First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update applies a partial edit to an owned job.
func (s *JobService) Update(recruiterID, id uint, req *dtos.JobUpdateRequest, picture string) (*models.Job, error) {
	job, err := s.GetOwned(recruiterID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.PayPerHour != nil {
		job.PayPerHour = *req.PayPerHour
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.WorkMode != nil {
		if !req.WorkMode.Valid() {
			return nil, apierr.ErrBadRequest("invalid work mode")
		}
		job.WorkMode = *req.WorkMode
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.KeyResponsibilities != nil {
		job.KeyResponsibilities = *req.KeyResponsibilities
	}
	if picture != "" {
		job.Picture = picture
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}

	if req.SkillIDs != nil {
		var skills []models.Skill
		if err := s.DB.Where("id IN ?", req.SkillIDs).Find(&skills).Error; err != nil {
			return nil, err
		}
		if err := s.DB.Model(job).Association("Skills").Replace(skills); err != nil {
			return nil, err
		}
	}
	return s.GetOwned(recruiterID, id)
}

// Delete removes an owned job.
func (s *JobService) Delete(recruiterID, id uint) error {
	job, err := s.GetOwned(recruiterID, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(job).Error
}

// Recommend returns up to five jobs whose skills overlap the freelancer's,
// excluding jobs already applied to, newest-first. A freelancer with no
// profile or no skills gets an empty list, not an error.
func (s *JobService) Recommend(freelancerID uint) ([]models.Job, error) {
	var profile models.FreelancerProfile
	err := s.DB.Preload("Skills").Where("user_id = ?", freelancerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Job{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(profile.Skills) == 0 {
		return []models.Job{}, nil
	}

	skillIDs := make([]uint, 0, len(profile.Skills))
	for _, sk := range profile.Skills {
		skillIDs = append(skillIDs, sk.ID)
	}

	var jobs []models.Job
	err = s.DB.Preload("Skills").Preload("Recruiter").
		Where("jobs.id IN (?)", s.DB.Table("job_skills").
			Select("job_id").
			Where("skill_id IN ?", skillIDs)).
		Where("jobs.id NOT IN (?)", s.DB.Table("applications").
			Select("job_id").
			Where("freelancer_id = ?", freelancerID)).
		Order("jobs.created_at DESC").
		Limit(maxRecommendations).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// AlreadyApplied reports whether the user has an application on the job.
func (s *JobService) AlreadyApplied(userID, jobID uint) bool {
	var count int64
	s.DB.Model(&models.Application{}).
		Where("job_id = ? AND freelancer_id = ?", jobID, userID).
		Count(&count)
	return count > 0
}

// ListSkills returns the full skill catalogue.
func (s *JobService) ListSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := s.DB.Order("name").Find(&skills).Error
	return skills, err
}
