package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/internal/services"
	"github.com/skillconnect/skillconnect-backend/internal/storage"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type ApplicationHandler struct {
	Apps     *services.ApplicationService
	Analyzer *services.ResumeAnalyzer
	Store    *storage.Store
}

func NewApplicationHandler(apps *services.ApplicationService, analyzer *services.ResumeAnalyzer, store *storage.Store) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps, Analyzer: analyzer, Store: store}
}

// Apply is POST /application/apply/ (freelancer). Multipart; the resume
// upload is optional, falling back to the profile's on-file resume.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request: "+err.Error()))
		return
	}

	resume := ""
	if fh, err := c.FormFile("resume"); err == nil {
		saved, err := h.Store.Save(fh, "resumes")
		if err != nil {
			respondError(c, err)
			return
		}
		resume = saved
	}

	app, err := h.Apps.Apply(auth.CurrentUserID(c), &req, resume)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(c, app))
}

// Mine is GET /application/my/ (freelancer).
func (h *ApplicationHandler) Mine(c *gin.Context) {
	var query dtos.ApplicationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid query parameters: "+err.Error()))
		return
	}

	apps, err := h.Apps.ListMine(auth.CurrentUserID(c), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponses(c, apps))
}

// ForMyJobs is GET /application/recruiter/ (recruiter).
func (h *ApplicationHandler) ForMyJobs(c *gin.Context) {
	apps, err := h.Apps.ListForRecruiter(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponses(c, apps))
}

// UpdateStatus is PATCH /application/:id/status/ (owning recruiter).
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	app, err := h.Apps.UpdateStatus(auth.CurrentUserID(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, app))
}

// AnalyzeResume is POST /application/:id/analyze-resume/ (owning
// recruiter).
func (h *ApplicationHandler) AnalyzeResume(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	analysis, err := h.Analyzer.Analyze(c.Request.Context(), auth.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *ApplicationHandler) toResponse(c *gin.Context, app *models.Application) dtos.ApplicationResponse {
	proj := h.Apps.Project(app, auth.CurrentUserID(c), auth.CurrentRole(c))
	return dtos.NewApplicationResponse(app, proj, h.Store.URL)
}

func (h *ApplicationHandler) toResponses(c *gin.Context, apps []models.Application) []dtos.ApplicationResponse {
	responses := make([]dtos.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, h.toResponse(c, &apps[i]))
	}
	return responses
}
