package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"pgstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListRooms)
	rg.GET("/room/:room_id", h.GetRoom)
}

// ListRooms handles GET / with query parameters page, min_price,
// max_price, min_rating and q. Non-numeric filter values are rejected
// rather than silently dropped.
func (h *Handler) ListRooms(c *gin.Context) {
	var req ListRoomsRequest

	req.Page = 1
	if page := c.Query("page"); page != "" {
		val, err := strconv.Atoi(page)
		if err != nil || val < 1 {
			response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "page must be a positive integer")
			return
		}
		req.Page = val
	}

	if minPrice := c.Query("min_price"); minPrice != "" {
		val, err := strconv.Atoi(minPrice)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "min_price must be an integer")
			return
		}
		req.MinPrice = &val
	}

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		val, err := strconv.Atoi(maxPrice)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "max_price must be an integer")
			return
		}
		req.MaxPrice = &val
	}

	if minRating := c.Query("min_rating"); minRating != "" {
		val, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "min_rating must be a number")
			return
		}
		req.MinRating = &val
	}

	req.Query = c.Query("q")

	page, err := h.service.ListRooms(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}

	response.Success(c, http.StatusOK, page)
}

// GetRoom handles GET /room/:room_id
func (h *Handler) GetRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("room_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid room ID")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}
