package dtos

import "github.com/skillconnect/skillconnect-backend/internal/models"

type TestimonialCreateRequest struct {
	Content string `json:"content" binding:"required"`
}

type TestimonialResponse struct {
	ID         uint   `json:"id"`
	Content    string `json:"content"`
	UserName   string `json:"user_name"`
	UserTitle  string `json:"user_title"`
	UserPicURL string `json:"user_pic_url,omitempty"`
}

// NewTestimonialResponse projects an approved testimonial (with User and
// its profiles preloaded) for the public listing.
func NewTestimonialResponse(t *models.Testimonial, mediaURL func(string) string) TestimonialResponse {
	resp := TestimonialResponse{
		ID:        t.ID,
		Content:   t.Content,
		UserName:  t.User.Username,
		UserTitle: "SkillConnect User",
	}

	switch t.User.Role {
	case models.RoleFreelancer:
		if p := t.User.FreelancerProfile; p != nil {
			if p.Name != "" {
				resp.UserName = p.Name
			}
			resp.UserTitle = p.Experience.Display()
			resp.UserPicURL = mediaURL(p.ProfilePic)
		} else {
			resp.UserTitle = "Freelancer"
		}
	case models.RoleRecruiter:
		if p := t.User.RecruiterProfile; p != nil {
			if p.CompanyName != "" {
				resp.UserName = p.CompanyName
			}
			if p.Industry != "" {
				resp.UserTitle = p.Industry
			} else {
				resp.UserTitle = "Recruiter"
			}
			resp.UserPicURL = mediaURL(p.CompanyLogo)
		} else {
			resp.UserTitle = "Recruiter"
		}
	}
	return resp
}
