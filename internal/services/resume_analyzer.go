package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

// FileReader is the slice of the media store the analyzer needs.
type FileReader interface {
	ReadFile(rel string) ([]byte, error)
}

type ResumeAnalyzer struct {
	Apps  *ApplicationService
	Files FileReader
	Gen   TextGenerator
}

func NewResumeAnalyzer(apps *ApplicationService, files FileReader, gen TextGenerator) *ResumeAnalyzer {
	return &ResumeAnalyzer{Apps: apps, Files: files, Gen: gen}
}

const resumeAnalysisPrompt = "You are an expert HR assistant. Your task is to analyze a candidate's resume against a job description. " +
	"Based on the provided job requirements and resume text, provide ONLY a raw JSON object with the following structure: " +
	"{'match_score': <a number between 0 and 100>, " +
	"'summary': '<a one-paragraph summary of the candidate's strengths and weaknesses for this role>', " +
	"'matched_skills': [<a list of skills from the job requirements that are present in the resume>], " +
	"'missing_skills': [<a list of skills from the job requirements that are NOT found in the resume>]}." +
	"\n\n--- JOB REQUIREMENTS ---\n%s\n\n--- RESUME TEXT ---\n%s"

// Analyze extracts the resume text of an application owned by the
// recruiter and asks the model for a structured match assessment.
func (a *ResumeAnalyzer) Analyze(ctx context.Context, recruiterID, applicationID uint) (*dtos.ResumeAnalysis, error) {
	app, err := a.Apps.GetOwnedByRecruiter(recruiterID, applicationID)
	if err != nil {
		return nil, err
	}

	if app.Resume == "" {
		return nil, apierr.ErrBadRequest("no resume file found for this application")
	}

	data, err := a.Files.ReadFile(app.Resume)
	if err != nil {
		return nil, apierr.ErrBadRequest("no resume file found for this application")
	}

	resumeText, err := ExtractPDFText(data)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(resumeAnalysisPrompt, jobRequirements(&app.Job), resumeText)

	reply, err := a.Gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis dtos.ResumeAnalysis
	if err := json.Unmarshal([]byte(StripCodeFence(reply)), &analysis); err != nil {
		slog.Error("resume analysis returned invalid JSON",
			"application_id", applicationID,
			"error", err)
		return nil, apierr.ErrInternal("the AI response was not in a valid format")
	}
	return &analysis, nil
}

func jobRequirements(job *models.Job) string {
	names := make([]string, 0, len(job.Skills))
	for _, sk := range job.Skills {
		names = append(names, sk.Name)
	}
	return fmt.Sprintf("Title: %s\nRequirements: %s\nSkills: %s",
		job.Title, job.Requirements, strings.Join(names, ", "))
}

// ExtractPDFText pulls the plain text out of a PDF. Encrypted documents
// and documents with no extractable text are distinct client errors.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", apierr.ErrBadRequest("the resume PDF is encrypted and cannot be read")
		}
		return "", apierr.ErrBadRequest("could not read the resume PDF")
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", apierr.ErrBadRequest("could not extract any text from the resume PDF")
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", apierr.ErrBadRequest("could not extract any text from the resume PDF")
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", apierr.ErrBadRequest("could not extract any text from the resume PDF")
	}
	return text, nil
}
