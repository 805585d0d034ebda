package services

import (
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
)

const maxTopFreelancers = 5

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// GetRecruiter returns the recruiter profile for a user.
func (s *ProfileService) GetRecruiter(userID uint) (*models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	err := s.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateRecruiter applies a partial update. An uploaded logo path replaces
// the stored one; empty means keep.
func (s *ProfileService) UpdateRecruiter(userID uint, req *dtos.RecruiterProfileUpdateRequest, logo string) (*models.RecruiterProfile, error) {
	profile, err := s.GetRecruiter(userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.CompanyWebsite != nil {
		profile.CompanyWebsite = *req.CompanyWebsite
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.About != nil {
		profile.About = *req.About
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = *req.LinkedinURL
	}
	if logo != "" {
		profile.CompanyLogo = logo
	}

	if err := s.DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// GetFreelancer returns the freelancer profile (with skills) for a user.
func (s *ProfileService) GetFreelancer(userID uint) (*models.FreelancerProfile, error) {
	var profile models.FreelancerProfile
	err := s.DB.Preload("Skills").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateFreelancer applies a partial update. Non-nil SkillIDs replaces the
// whole skill set; uploaded file paths replace the stored ones.
func (s *ProfileService) UpdateFreelancer(userID uint, req *dtos.FreelancerProfileUpdateRequest, resume, profilePic string) (*models.FreelancerProfile, error) {
	profile, err := s.GetFreelancer(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.DOB != nil {
		profile.DOB = req.DOB
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.PortfolioURL != nil {
		profile.PortfolioURL = *req.PortfolioURL
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.GithubURL != nil {
		profile.GithubURL = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = *req.LinkedinURL
	}
	if req.ExpectedSalary != nil {
		profile.ExpectedSalary = *req.ExpectedSalary
	}
	if req.Availability != nil {
		profile.Availability = *req.Availability
	}
	if resume != "" {
		profile.Resume = resume
	}
	if profilePic != "" {
		profile.ProfilePic = profilePic
	}

	if err := s.DB.Save(profile).Error; err != nil {
		return nil, err
	}

	if req.SkillIDs != nil {
		var skills []models.Skill
		if err := s.DB.Where("id IN ?", req.SkillIDs).Find(&skills).Error; err != nil {
			return nil, err
		}
		if err := s.DB.Model(profile).Association("Skills").Replace(skills); err != nil {
			return nil, err
		}
	}
	return s.GetFreelancer(userID)
}

// ListCompanies returns recruiter profiles with a non-empty company name,
// ordered by name. Public.
func (s *ProfileService) ListCompanies() ([]models.RecruiterProfile, error) {
	var profiles []models.RecruiterProfile
	err := s.DB.Where("company_name <> ''").
		Order("company_name").
		Find(&profiles).Error
	return profiles, err
}

// RankedFreelancer pairs a profile with its computed average rating.
type RankedFreelancer struct {
	Profile   models.FreelancerProfile
	AvgRating float64
}

// TopFreelancers returns the five highest-rated freelancers. Only
// freelancers with at least one review qualify.
func (s *ProfileService) TopFreelancers() ([]RankedFreelancer, error) {
	type row struct {
		ProfileID uint
		AvgRating float64
	}

	var rows []row
	err := s.DB.Table("freelancer_profiles").
		Select("freelancer_profiles.id AS profile_id, AVG(reviews.rating) AS avg_rating").
		Joins("JOIN reviews ON reviews.reviewee_id = freelancer_profiles.user_id").
		Group("freelancer_profiles.id").
		Order("avg_rating DESC").
		Limit(maxTopFreelancers).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedFreelancer, 0, len(rows))
	for _, r := range rows {
		var profile models.FreelancerProfile
		if err := s.DB.First(&profile, r.ProfileID).Error; err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedFreelancer{Profile: profile, AvgRating: r.AvgRating})
	}
	return ranked, nil
}
