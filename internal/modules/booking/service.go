package booking

import (
	"context"
	"errors"
	"time"

	"pgstay/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

// Book applies the booking transition: booked, booked_by, booked_at and
// the payload are set together in one update. An existing booking is
// overwritten without complaint, matching the legacy behavior.
func (s *Service) Book(ctx context.Context, actor string, roomID int, payload *domain.BookingPayload) error {
	if actor == "" || payload == nil {
		return ErrValidation
	}

	err := s.rooms.SetBooking(ctx, roomID, actor, time.Now(), payload)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomNotFound
	}
	return err
}

// Cancel unconditionally clears the booking fields. Cancelling a room
// that is not booked is a no-op success.
func (s *Service) Cancel(ctx context.Context, roomID int) error {
	err := s.rooms.ClearBooking(ctx, roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomNotFound
	}
	return err
}

// Stats computes the dashboard aggregates with a full scan of the room
// store; there is no incremental maintenance.
func (s *Service) Stats(ctx context.Context, actor string) (*DashboardStats, error) {
	total, err := s.rooms.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := s.rooms.CountBooked(ctx)
	if err != nil {
		return nil, err
	}

	profit, err := s.rooms.SumBookedPrices(ctx)
	if err != nil {
		return nil, err
	}

	myRooms, err := s.rooms.GetByBookedBy(ctx, actor)
	if err != nil {
		return nil, err
	}

	perUser, err := s.rooms.CountBookedByUser(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Username:       actor,
		TotalRooms:     total,
		BookedRooms:    booked,
		AvailableRooms: total - booked,
		TotalProfit:    profit,
		MyRooms:        myRooms,
		UsersBooking:   perUser,
	}, nil
}
