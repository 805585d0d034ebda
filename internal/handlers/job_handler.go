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

type JobHandler struct {
	Jobs  *services.JobService
	Store *storage.Store
}

func NewJobHandler(jobs *services.JobService, store *storage.Store) *JobHandler {
	return &JobHandler{Jobs: jobs, Store: store}
}

// Create is POST /job/create/ (recruiter). Multipart; the picture upload is
// optional.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request: "+err.Error()))
		return
	}

	picture := ""
	if fh, err := c.FormFile("picture"); err == nil {
		saved, err := h.Store.Save(fh, "jobs")
		if err != nil {
			respondError(c, err)
			return
		}
		picture = saved
	}

	job, err := h.Jobs.Create(auth.CurrentUserID(c), &req, picture)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewJobResponse(job, false, h.Store.URL))
}

// Mine is GET /job/my/ (recruiter).
func (h *JobHandler) Mine(c *gin.Context) {
	jobs, err := h.Jobs.ListOwned(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponses(c, jobs))
}

// List is GET /job/ (freelancer), with the conjunctive filter set.
func (h *JobHandler) List(c *gin.Context) {
	var filter dtos.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid query parameters: "+err.Error()))
		return
	}

	jobs, err := h.Jobs.List(&filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponses(c, jobs))
}

// Detail is GET /job/:id/ (any authenticated user).
func (h *JobHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.Jobs.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobResponse(job, h.alreadyApplied(c, job.ID), h.Store.URL))
}

// Update is PATCH /job/:id/edit/ (owning recruiter).
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request: "+err.Error()))
		return
	}

	picture := ""
	if fh, err := c.FormFile("picture"); err == nil {
		saved, err := h.Store.Save(fh, "jobs")
		if err != nil {
			respondError(c, err)
			return
		}
		picture = saved
	}

	job, err := h.Jobs.Update(auth.CurrentUserID(c), id, &req, picture)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobResponse(job, false, h.Store.URL))
}

// Delete is DELETE /job/:id/delete/ (owning recruiter).
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Jobs.Delete(auth.CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Recommendations is GET /job/recommendations/ (freelancer).
func (h *JobHandler) Recommendations(c *gin.Context) {
	jobs, err := h.Jobs.Recommend(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponses(c, jobs))
}

// Skills is GET /skills/ (public).
func (h *JobHandler) Skills(c *gin.Context) {
	skills, err := h.Jobs.ListSkills()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *JobHandler) alreadyApplied(c *gin.Context, jobID uint) bool {
	if auth.CurrentRole(c) != models.RoleFreelancer {
		return false
	}
	return h.Jobs.AlreadyApplied(auth.CurrentUserID(c), jobID)
}

func (h *JobHandler) toResponses(c *gin.Context, jobs []models.Job) []dtos.JobResponse {
	responses := make([]dtos.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses,
			dtos.NewJobResponse(&jobs[i], h.alreadyApplied(c, jobs[i].ID), h.Store.URL))
	}
	return responses
}
