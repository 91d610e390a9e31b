package catalog

import "pgstay/internal/domain"

type ListRoomsRequest struct {
	Page      int
	MinPrice  *int
	MaxPrice  *int
	MinRating *float64
	Query     string
}

type RoomPage struct {
	Rooms      []domain.Room `json:"rooms"`
	Total      int64         `json:"total"`
	Available  int64         `json:"available"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}
