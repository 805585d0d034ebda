package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/services"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type ChatbotHandler struct {
	Chatbot *services.ChatbotService
	Users   *services.UserService
}

func NewChatbotHandler(chatbot *services.ChatbotService, users *services.UserService) *ChatbotHandler {
	return &ChatbotHandler{Chatbot: chatbot, Users: users}
}

// Chat is POST /chatbot/
func (h *ChatbotHandler) Chat(c *gin.Context) {
	var req dtos.ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	user, err := h.Users.Get(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	reply, err := h.Chatbot.Reply(c.Request.Context(), user, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.ChatbotResponse{Reply: reply})
}
