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

type TestimonialHandler struct {
	Testimonials *services.TestimonialService
	Store        *storage.Store
}

func NewTestimonialHandler(testimonials *services.TestimonialService, store *storage.Store) *TestimonialHandler {
	return &TestimonialHandler{Testimonials: testimonials, Store: store}
}

// Submit is POST /testimonials/submit/ (any authenticated user).
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req dtos.TestimonialCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	testimonial, err := h.Testimonials.Submit(auth.CurrentUserID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": testimonial.ID, "content": testimonial.Content})
}

// List is GET /testimonials/ (public, approved only).
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.Testimonials.ListApproved()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dtos.TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		responses = append(responses, dtos.NewTestimonialResponse(&testimonials[i], h.Store.URL))
	}
	c.JSON(http.StatusOK, responses)
}
