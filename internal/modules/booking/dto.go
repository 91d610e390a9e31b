package booking

import (
	"pgstay/internal/domain"
	"pgstay/internal/repository"
)

// BookRoomRequest is the simple booking form: a room and a plain date string.
type BookRoomRequest struct {
	RoomID      int    `json:"room_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
}

// BookStayRequest is the detailed booking form.
type BookStayRequest struct {
	Checkin  string `json:"checkin" binding:"required"`
	Checkout string `json:"checkout" binding:"required"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

type DashboardStats struct {
	Username       string                       `json:"username"`
	TotalRooms     int64                        `json:"total_rooms"`
	BookedRooms    int64                        `json:"booked_rooms"`
	AvailableRooms int64                        `json:"available_rooms"`
	TotalProfit    int64                        `json:"total_profit"`
	MyRooms        []domain.Room                `json:"my_rooms"`
	UsersBooking   []repository.BookingCountRow `json:"users_booking"`
}
