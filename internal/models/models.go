package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role is a closed set. It is assigned at registration and never changes.
type Role string

const (
	RoleRecruiter  Role = "recruiter"
	RoleFreelancer Role = "freelancer"
)

func (r Role) Valid() bool {
	return r == RoleRecruiter || r == RoleFreelancer
}

type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
)

func (w WorkMode) Valid() bool {
	return w == WorkModeRemote || w == WorkModeOnsite || w == WorkModeHybrid
}

// Display returns the human-readable label shown in job listings.
func (w WorkMode) Display() string {
	switch w {
	case WorkModeRemote:
		return "Remote"
	case WorkModeOnsite:
		return "On-site"
	case WorkModeHybrid:
		return "Hybrid"
	}
	return string(w)
}

type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

func (e ExperienceLevel) Display() string {
	switch e {
	case ExperienceEntry:
		return "Entry Level"
	case ExperienceIntermediate:
		return "Intermediate"
	case ExperienceExpert:
		return "Expert"
	}
	return string(e)
}

type Availability string

const (
	AvailabilityFullTime Availability = "full_time"
	AvailabilityPartTime Availability = "part_time"
)

func (a Availability) Display() string {
	switch a {
	case AvailabilityFullTime:
		return "Full Time"
	case AvailabilityPartTime:
		return "Part Time"
	}
	return string(a)
}

// Application status machine: applied -> accepted | rejected.
// Accepted and rejected are terminal.
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidStatusTransition reports whether an application may move from one
// status to another.
func ValidStatusTransition(from, to string) bool {
	if from != ApplicationStatusApplied {
		return false
	}
	return to == ApplicationStatusAccepted || to == ApplicationStatusRejected
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`

	RecruiterProfile  *RecruiterProfile  `gorm:"foreignKey:UserID" json:"recruiter_profile,omitempty"`
	FreelancerProfile *FreelancerProfile `gorm:"foreignKey:UserID" json:"freelancer_profile,omitempty"`
}

type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type RecruiterProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"-"`

	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
	Location       string `json:"location"`
	About          string `gorm:"type:text" json:"about"`
	Industry       string `json:"industry"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	LinkedinURL    string `json:"linkedin_url"`
	// CompanyLogo is the stored file path, relative to the media dir.
	CompanyLogo string `json:"-"`
}

type FreelancerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"-"`

	Name           string          `json:"name"`
	DOB            *time.Time      `json:"dob"`
	Education      string          `json:"education"`
	Experience     ExperienceLevel `gorm:"type:varchar(30)" json:"experience"`
	Skills         []Skill         `gorm:"many2many:freelancer_skills" json:"skills"`
	PortfolioURL   string          `json:"portfolio_url"`
	Resume         string          `json:"-"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	GithubURL      string          `json:"github_url"`
	LinkedinURL    string          `json:"linkedin_url"`
	ExpectedSalary float64         `json:"expected_salary"`
	Availability   Availability    `gorm:"type:varchar(30)" json:"availability"`
	ProfilePic     string          `json:"-"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RecruiterID uint `gorm:"not null;index" json:"recruiter_id"`
	Recruiter   User `json:"-"`

	Title               string   `gorm:"not null" json:"title"`
	PayPerHour          float64  `json:"pay_per_hour"`
	Requirements        string   `gorm:"type:text" json:"requirements"`
	WorkMode            WorkMode `gorm:"type:varchar(20)" json:"work_mode"`
	Location            string   `json:"location"`
	KeyResponsibilities string   `gorm:"type:text" json:"key_responsibilities"`
	Picture             string   `json:"-"`

	Skills       []Skill       `gorm:"many2many:job_skills" json:"skills"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// One application per (job, freelancer).
	JobID        uint `gorm:"not null;uniqueIndex:idx_job_freelancer" json:"job_id"`
	Job          Job  `json:"-"`
	FreelancerID uint `gorm:"not null;uniqueIndex:idx_job_freelancer" json:"freelancer_id"`
	Freelancer   User `json:"-"`

	Resume      string `json:"-"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	Status      string `gorm:"type:varchar(20);default:'applied'" json:"status"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// One review per (job, reviewer, reviewee).
	JobID      uint `gorm:"not null;uniqueIndex:idx_job_reviewer_reviewee" json:"job_id"`
	Job        Job  `json:"-"`
	ReviewerID uint `gorm:"not null;uniqueIndex:idx_job_reviewer_reviewee" json:"reviewer_id"`
	Reviewer   User `json:"-"`
	RevieweeID uint `gorm:"not null;uniqueIndex:idx_job_reviewer_reviewee;index" json:"reviewee_id"`
	Reviewee   User `json:"-"`

	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID  uint           `gorm:"not null;index" json:"user_id"`
	User    User           `json:"-"`
	Message string         `gorm:"not null" json:"message"`
	Link    string         `json:"link"`
	Data    datatypes.JSON `json:"data,omitempty"`
	IsRead  bool           `gorm:"default:false" json:"is_read"`
}

type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID     uint   `gorm:"not null;index" json:"user_id"`
	User       User   `json:"-"`
	Content    string `gorm:"type:text;not null" json:"content"`
	IsApproved bool   `gorm:"default:false" json:"is_approved"`
}
