package repository

import (
	"context"
	"fmt"
	"log"

	"pgstay/internal/domain"
)

const defaultRoomCount = 100

// DefaultRooms derives the fixed room inventory from the index: rooms are
// numbered 1..n with price, rating and image computed from the number.
func DefaultRooms(n int) []domain.Room {
	rooms := make([]domain.Room, 0, n)
	for i := 1; i <= n; i++ {
		rooms = append(rooms, domain.Room{
			RoomID: i,
			Name:   fmt.Sprintf("Room %d", i),
			Price:  3000 + i*10,
			Rating: float64(i%5 + 1),
			Image:  fmt.Sprintf("%d.jpeg", i%8+1),
		})
	}
	return rooms
}

// EnsureDefaultRooms seeds the room inventory once. The guard is an
// emptiness check only; partial data is left untouched.
func EnsureDefaultRooms(ctx context.Context, rooms *RoomRepository) error {
	n, err := rooms.CountAll(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Printf("seeding %d rooms", defaultRoomCount)
	return rooms.CreateBatch(ctx, DefaultRooms(defaultRoomCount))
}
