package catalog

import (
	"context"

	"pgstay/internal/domain"
	"pgstay/internal/repository"
)

// RoomReader defines the room store operations the catalog needs
type RoomReader interface {
	List(ctx context.Context, f repository.RoomFilters) (rooms []domain.Room, total int64, available int64, err error)
	GetByRoomID(ctx context.Context, roomID int) (*domain.Room, error)
}
