package dtos

type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatbotResponse struct {
	Reply string `json:"reply"`
}

// ResumeAnalysis is the structured assessment the AI returns for a
// resume-vs-job match.
type ResumeAnalysis struct {
	MatchScore    int      `json:"match_score"`
	Summary       string   `json:"summary"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}
