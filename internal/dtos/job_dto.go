package dtos

import (
	"time"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

type JobCreationRequest struct {
	Title               string          `form:"title" binding:"required"`
	PayPerHour          float64         `form:"pay_per_hour" binding:"required"`
	Requirements        string          `form:"requirements" binding:"required"`
	WorkMode            models.WorkMode `form:"work_mode" binding:"required"`
	Location            string          `form:"location"`
	KeyResponsibilities string          `form:"key_responsibilities"`
	SkillIDs            []uint          `form:"skill_ids"`
}

// JobUpdateRequest carries partial updates; nil means "leave unchanged".
type JobUpdateRequest struct {
	Title               *string          `form:"title"`
	PayPerHour          *float64         `form:"pay_per_hour"`
	Requirements        *string          `form:"requirements"`
	WorkMode            *models.WorkMode `form:"work_mode"`
	Location            *string          `form:"location"`
	KeyResponsibilities *string          `form:"key_responsibilities"`
	SkillIDs            []uint           `form:"skill_ids"`
}

// JobFilter mirrors the list endpoint's query parameters. All active
// filters apply conjunctively.
type JobFilter struct {
	SkillIDs   []uint   `form:"skills"`
	MinPay     *float64 `form:"min_pay"`
	MaxPay     *float64 `form:"max_pay"`
	Location   string   `form:"location"`
	Experience string   `form:"experience"`
	Limit      int      `form:"limit"`
	Offset     int      `form:"offset"`
}

type JobResponse struct {
	ID                  uint            `json:"id"`
	Title               string          `json:"title"`
	PayPerHour          float64         `json:"pay_per_hour"`
	Skills              []models.Skill  `json:"skills"`
	Requirements        string          `json:"requirements"`
	RecruiterEmail      string          `json:"recruiter_email"`
	WorkMode            models.WorkMode `json:"work_mode"`
	WorkModeDisplay     string          `json:"work_mode_display"`
	Location            string          `json:"location"`
	KeyResponsibilities string          `json:"key_responsibilities"`
	PictureURL          string          `json:"picture_url,omitempty"`
	AlreadyApplied      bool            `json:"already_applied"`
	CreatedAt           time.Time       `json:"created_at"`
}

// NewJobResponse projects a persisted job into its API shape. The
// already-applied flag and media URL resolution come from the caller.
func NewJobResponse(job *models.Job, alreadyApplied bool, mediaURL func(string) string) JobResponse {
	skills := job.Skills
	if skills == nil {
		skills = []models.Skill{}
	}
	return JobResponse{
		ID:                  job.ID,
		Title:               job.Title,
		PayPerHour:          job.PayPerHour,
		Skills:              skills,
		Requirements:        job.Requirements,
		RecruiterEmail:      job.Recruiter.Email,
		WorkMode:            job.WorkMode,
		WorkModeDisplay:     job.WorkMode.Display(),
		Location:            job.Location,
		KeyResponsibilities: job.KeyResponsibilities,
		PictureURL:          mediaURL(job.Picture),
		AlreadyApplied:      alreadyApplied,
		CreatedAt:           job.CreatedAt,
	}
}
