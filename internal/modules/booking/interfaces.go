package booking

import (
	"context"
	"time"

	"pgstay/internal/domain"
	"pgstay/internal/repository"
)

// RoomRepository defines the room store operations the booking engine needs
type RoomRepository interface {
	SetBooking(ctx context.Context, roomID int, bookedBy string, bookedAt time.Time, payload *domain.BookingPayload) error
	ClearBooking(ctx context.Context, roomID int) error
	CountAll(ctx context.Context) (int64, error)
	CountBooked(ctx context.Context) (int64, error)
	SumBookedPrices(ctx context.Context) (int64, error)
	CountBookedByUser(ctx context.Context) ([]repository.BookingCountRow, error)
	GetByBookedBy(ctx context.Context, username string) ([]domain.Room, error)
}
