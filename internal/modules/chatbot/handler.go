package chatbot

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chatbot", h.Chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /chatbot. The widget sends {"message": ...} and
// always receives a reply, falling back to a canned answer.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request body",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": h.service.Reply(req.Message)})
}
