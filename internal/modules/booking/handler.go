package booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"pgstay/internal/domain"
	"pgstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.BookRoom)
	rg.POST("/room/:room_id", h.BookStay)
	rg.GET("/cancel/:room_id", h.CancelBooking)
	rg.GET("/dashboard", h.Dashboard)
}

// BookRoom handles the simple booking form posted from the listing page.
func (h *Handler) BookRoom(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id and booking_date are required")
		return
	}

	if err := h.service.Book(c.Request.Context(), username, req.RoomID, domain.DatePayload(req.BookingDate)); err != nil {
		h.bookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Room %d booked for %s!", req.RoomID, req.BookingDate),
	})
}

// BookStay handles the detailed booking form posted from the room page.
func (h *Handler) BookStay(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	roomID, err := strconv.Atoi(c.Param("room_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid room ID")
		return
	}

	var req BookStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkin and checkout are required")
		return
	}
	if req.Adults == 0 {
		req.Adults = 1
	}

	payload := domain.StayPayload(domain.StayDetails{
		Checkin:  req.Checkin,
		Checkout: req.Checkout,
		Adults:   req.Adults,
		Children: req.Children,
	})

	if err := h.service.Book(c.Request.Context(), username, roomID, payload); err != nil {
		h.bookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Room %d booked successfully!", roomID),
	})
}

// CancelBooking handles GET /cancel/:room_id
func (h *Handler) CancelBooking(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("room_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid room ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), roomID); err != nil {
		h.bookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Booking for Room %d canceled!", roomID),
	})
}

// Dashboard handles GET /dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute dashboard")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
	}
}
