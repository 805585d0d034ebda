package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/services"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
	Users   *services.UserService
}

func NewReviewHandler(reviews *services.ReviewService, users *services.UserService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Users: users}
}

// Create is POST /reviews/
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dtos.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	reviewer, err := h.Users.Get(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	review, err := h.Reviews.Create(reviewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewReviewResponse(review))
}

// ListForUser is GET /user/:id/reviews/
func (h *ReviewHandler) ListForUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.Reviews.ListForUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dtos.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, dtos.NewReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, responses)
}
