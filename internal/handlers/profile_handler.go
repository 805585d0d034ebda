package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/services"
	"github.com/skillconnect/skillconnect-backend/internal/storage"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
	Reviews  *services.ReviewService
	Store    *storage.Store
}

func NewProfileHandler(profiles *services.ProfileService, reviews *services.ReviewService, store *storage.Store) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Reviews: reviews, Store: store}
}

// GetRecruiterMe is GET /profile/recruiter/me/
func (h *ProfileHandler) GetRecruiterMe(c *gin.Context) {
	userID := auth.CurrentUserID(c)
	profile, err := h.Profiles.GetRecruiter(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewRecruiterProfileResponse(profile, h.Reviews.AverageRating(userID), h.Store.URL))
}

// UpdateRecruiterMe is PATCH /profile/recruiter/me/. Multipart; the logo
// upload is optional.
func (h *ProfileHandler) UpdateRecruiterMe(c *gin.Context) {
	var req dtos.RecruiterProfileUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request: "+err.Error()))
		return
	}

	logo := ""
	if fh, err := c.FormFile("company_logo"); err == nil {
		saved, err := h.Store.Save(fh, "logos")
		if err != nil {
			respondError(c, err)
			return
		}
		logo = saved
	}

	userID := auth.CurrentUserID(c)
	profile, err := h.Profiles.UpdateRecruiter(userID, &req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewRecruiterProfileResponse(profile, h.Reviews.AverageRating(userID), h.Store.URL))
}

// GetFreelancerMe is GET /profile/freelancer/me/
func (h *ProfileHandler) GetFreelancerMe(c *gin.Context) {
	userID := auth.CurrentUserID(c)
	profile, err := h.Profiles.GetFreelancer(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewFreelancerProfileResponse(profile, h.Reviews.AverageRating(userID), h.Store.URL))
}

// UpdateFreelancerMe is PATCH /profile/freelancer/me/. Multipart; resume
// and profile picture uploads are optional.
func (h *ProfileHandler) UpdateFreelancerMe(c *gin.Context) {
	var req dtos.FreelancerProfileUpdateRequest
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

	profilePic := ""
	if fh, err := c.FormFile("profilepic"); err == nil {
		saved, err := h.Store.Save(fh, "profilepics")
		if err != nil {
			respondError(c, err)
			return
		}
		profilePic = saved
	}

	userID := auth.CurrentUserID(c)
	profile, err := h.Profiles.UpdateFreelancer(userID, &req, resume, profilePic)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewFreelancerProfileResponse(profile, h.Reviews.AverageRating(userID), h.Store.URL))
}

// Companies is GET /companies/ (public).
func (h *ProfileHandler) Companies(c *gin.Context) {
	profiles, err := h.Profiles.ListCompanies()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dtos.CompanyResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, dtos.NewCompanyResponse(&profiles[i], h.Store.URL))
	}
	c.JSON(http.StatusOK, responses)
}

// TopFreelancers is GET /top-freelancers/ (public).
func (h *ProfileHandler) TopFreelancers(c *gin.Context) {
	ranked, err := h.Profiles.TopFreelancers()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dtos.TopFreelancerResponse, 0, len(ranked))
	for i := range ranked {
		responses = append(responses,
			dtos.NewTopFreelancerResponse(&ranked[i].Profile, ranked[i].AvgRating, h.Store.URL))
	}
	c.JSON(http.StatusOK, responses)
}
