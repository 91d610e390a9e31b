package catalog

import (
	"context"

	"pgstay/internal/domain"
	"pgstay/internal/repository"
)

// pageSize is fixed: the listing always pages by 20 rooms.
const pageSize = 20

type Service struct {
	rooms RoomReader
}

func NewService(rooms RoomReader) *Service {
	return &Service{rooms: rooms}
}

// ListRooms applies the conjunctive filter and returns one page in store
// order. A page past the end yields an empty page, not an error.
func (s *Service) ListRooms(ctx context.Context, req ListRoomsRequest) (*RoomPage, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	f := repository.RoomFilters{
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		MinRating: req.MinRating,
		Query:     req.Query,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}

	rooms, total, available, err := s.rooms.List(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + pageSize - 1) / pageSize)

	return &RoomPage{
		Rooms:      rooms,
		Total:      total,
		Available:  available,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) GetRoom(ctx context.Context, roomID int) (*domain.Room, error) {
	return s.rooms.GetByRoomID(ctx, roomID)
}
