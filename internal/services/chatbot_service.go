package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

// quotedSpan grabs the first single- or double-quoted span in a message.
var quotedSpan = regexp.MustCompile(`['"](.*?)['"]`)

type ChatbotService struct {
	DB  *gorm.DB
	Gen TextGenerator
}

func NewChatbotService(db *gorm.DB, gen TextGenerator) *ChatbotService {
	return &ChatbotService{DB: db, Gen: gen}
}

// intentRule pairs a keyword predicate with the canned lookup it triggers.
// Rules are evaluated in order; the first match wins.
type intentRule struct {
	match  func(msg string) bool
	handle func(msg string, userID uint) string
}

func (s *ChatbotService) rulesFor(role models.Role) []intentRule {
	switch role {
	case models.RoleFreelancer:
		return []intentRule{
			{
				match:  func(m string) bool { return strings.Contains(m, "status of my application") },
				handle: s.applicationStatus,
			},
			{
				match: func(m string) bool {
					return strings.Contains(m, "how many") && strings.Contains(m, "application")
				},
				handle: s.countApplications,
			},
			{
				match: func(m string) bool {
					return strings.Contains(m, "show me") && strings.Contains(m, "job")
				},
				handle: s.findJobs,
			},
		}
	case models.RoleRecruiter:
		return []intentRule{
			{
				match:  func(m string) bool { return strings.Contains(m, "how many new application") },
				handle: s.countRecruiterApplications,
			},
			{
				match: func(m string) bool {
					return strings.Contains(m, "list the freelancer") || strings.Contains(m, "who applied")
				},
				handle: s.listApplicants,
			},
		}
	}
	return nil
}

// RouteIntent lowercases the message, walks the role's rules in order and
// runs the first matching lookup. The second return is false when no
// intent matched.
func (s *ChatbotService) RouteIntent(role models.Role, message string, userID uint) (string, bool) {
	msg := strings.ToLower(message)
	for _, rule := range s.rulesFor(role) {
		if rule.match(msg) {
			return rule.handle(msg, userID), true
		}
	}
	return "", false
}

// Reply routes the message, wraps any retrieved data (or the raw message on
// fallback) into a prompt and returns the model's free-text answer.
func (s *ChatbotService) Reply(ctx context.Context, user *models.User, message string) (string, error) {
	data, matched := s.RouteIntent(user.Role, message, user.ID)

	var prompt string
	if matched {
		prompt = fmt.Sprintf(
			"You are a helpful assistant for the SkillConnect platform. A user asked a question, and I have retrieved the following data from the database: '%s'. "+
				"Based on this data, please formulate a friendly and natural language response to the user's original question: '%s'",
			data, strings.ToLower(message))
	} else {
		prompt = fmt.Sprintf(
			"You are a friendly and helpful assistant for a web platform called SkillConnect. "+
				"SkillConnect connects freelancers with recruiters. Your role is to answer user questions about the platform. "+
				"Please answer the following user question: '%s'",
			strings.ToLower(message))
	}

	return s.Gen.GenerateText(ctx, prompt)
}

func extractQuoted(text string) string {
	m := quotedSpan.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

func (s *ChatbotService) applicationStatus(msg string, userID uint) string {
	jobTitle := extractQuoted(msg)
	if jobTitle == "" {
		return `Please specify the job title in quotes, like "Senior Python Developer".`
	}

	var app models.Application
	err := s.DB.
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.freelancer_id = ? AND LOWER(jobs.title) = ?", userID, strings.ToLower(jobTitle)).
		First(&app).Error
	if err != nil {
		return fmt.Sprintf("Application for '%s' not found.", jobTitle)
	}
	return fmt.Sprintf("The status is '%s'.", app.Status)
}

func (s *ChatbotService) countApplications(msg string, userID uint) string {
	statusMap := map[string]string{
		"accepted": models.ApplicationStatusAccepted,
		"pending":  models.ApplicationStatusApplied,
		"rejected": models.ApplicationStatusRejected,
	}

	var statusKeyword string
	for _, keyword := range []string{"accepted", "pending", "rejected"} {
		if strings.Contains(msg, keyword) {
			statusKeyword = keyword
			break
		}
	}

	q := s.DB.Model(&models.Application{}).Where("freelancer_id = ?", userID)
	var count int64
	if statusKeyword != "" {
		q.Where("status = ?", statusMap[statusKeyword]).Count(&count)
		return fmt.Sprintf("Found %d %s applications.", count, statusKeyword)
	}
	q.Count(&count)
	return fmt.Sprintf("Found %d total applications.", count)
}

func (s *ChatbotService) findJobs(msg string, _ uint) string {
	parts := strings.SplitN(msg, "that require", 2)
	if len(parts) < 2 {
		return `Please specify the skills you're looking for, e.g., 'Show me remote jobs that require "Python"'.`
	}

	skillName := extractQuoted(parts[1])
	if skillName == "" {
		return "Please put the skill name in quotes."
	}

	var titles []string
	s.DB.Table("jobs").
		Joins("JOIN job_skills ON job_skills.job_id = jobs.id").
		Joins("JOIN skills ON skills.id = job_skills.skill_id").
		Where("LOWER(skills.name) = ? AND jobs.deleted_at IS NULL", strings.ToLower(skillName)).
		Limit(5).
		Pluck("jobs.title", &titles)

	if len(titles) == 0 {
		return fmt.Sprintf("No jobs found requiring '%s'.", skillName)
	}
	return fmt.Sprintf("Found %d jobs: %s.", len(titles), strings.Join(titles, ", "))
}

func (s *ChatbotService) countRecruiterApplications(msg string, userID uint) string {
	jobTitle := extractQuoted(msg)
	if jobTitle == "" {
		return "Please specify the job title in quotes."
	}

	var count int64
	s.DB.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ? AND LOWER(jobs.title) = ?", userID, strings.ToLower(jobTitle)).
		Count(&count)
	return fmt.Sprintf("Found %d applications for '%s'.", count, jobTitle)
}

func (s *ChatbotService) listApplicants(msg string, userID uint) string {
	jobTitle := extractQuoted(msg)
	if jobTitle == "" {
		return "Please specify the job title in quotes."
	}

	var names []string
	s.DB.Table("applications").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN users ON users.id = applications.freelancer_id").
		Where("jobs.recruiter_id = ? AND LOWER(jobs.title) = ?", userID, strings.ToLower(jobTitle)).
		Pluck("users.username", &names)

	if len(names) == 0 {
		return fmt.Sprintf("No applicants found for '%s'.", jobTitle)
	}
	return fmt.Sprintf("Applicants for '%s': %s.", jobTitle, strings.Join(names, ", "))
}
