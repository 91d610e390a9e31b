package catalog

import (
	"context"
	"testing"

	"pgstay/internal/domain"
	"pgstay/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

/* ==================== MOCKS ==================== */

type MockRoomReader struct {
	mock.Mock
}

func (m *MockRoomReader) List(ctx context.Context, f repository.RoomFilters) ([]domain.Room, int64, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, 0, args.Error(3)
	}
	return args.Get(0).([]domain.Room), args.Get(1).(int64), args.Get(2).(int64), args.Error(3)
}

func (m *MockRoomReader) GetByRoomID(ctx context.Context, roomID int) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

/* ==================== TESTS ==================== */

func TestListRooms_FirstPage(t *testing.T) {
	rooms := new(MockRoomReader)
	service := NewService(rooms)

	page := make([]domain.Room, 20)
	rooms.On("List", mock.Anything, repository.RoomFilters{Limit: 20, Offset: 0}).
		Return(page, int64(100), int64(97), nil)

	result, err := service.ListRooms(context.Background(), ListRoomsRequest{Page: 1})

	assert.NoError(t, err)
	assert.Len(t, result.Rooms, 20)
	assert.Equal(t, int64(100), result.Total)
	assert.Equal(t, int64(97), result.Available)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 5, result.TotalPages)
}

func TestListRooms_PageClampedToOne(t *testing.T) {
	rooms := new(MockRoomReader)
	service := NewService(rooms)

	rooms.On("List", mock.Anything, repository.RoomFilters{Limit: 20, Offset: 0}).
		Return([]domain.Room{}, int64(100), int64(100), nil)

	result, err := service.ListRooms(context.Background(), ListRoomsRequest{Page: 0})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)

	result, err = service.ListRooms(context.Background(), ListRoomsRequest{Page: -3})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
}

func TestListRooms_FiltersPassedThrough(t *testing.T) {
	rooms := new(MockRoomReader)
	service := NewService(rooms)

	minPrice := 3200
	maxPrice := 3600
	minRating := 3.0

	rooms.On("List", mock.Anything, repository.RoomFilters{
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
		MinRating: &minRating,
		Query:     "room 4",
		Limit:     20,
		Offset:    20,
	}).Return([]domain.Room{}, int64(0), int64(0), nil)

	_, err := service.ListRooms(context.Background(), ListRoomsRequest{
		Page:      2,
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
		MinRating: &minRating,
		Query:     "room 4",
	})

	assert.NoError(t, err)
	rooms.AssertExpectations(t)
}

// A page past the end is an empty page, not an error.
func TestListRooms_PagePastEnd(t *testing.T) {
	rooms := new(MockRoomReader)
	service := NewService(rooms)

	rooms.On("List", mock.Anything, repository.RoomFilters{Limit: 20, Offset: 180}).
		Return([]domain.Room{}, int64(100), int64(100), nil)

	result, err := service.ListRooms(context.Background(), ListRoomsRequest{Page: 10})

	assert.NoError(t, err)
	assert.Empty(t, result.Rooms)
	assert.Equal(t, 10, result.Page)
	assert.Equal(t, 5, result.TotalPages)
}

func TestListRooms_TotalPagesRoundsUp(t *testing.T) {
	rooms := new(MockRoomReader)
	service := NewService(rooms)

	rooms.On("List", mock.Anything, mock.Anything).
		Return([]domain.Room{}, int64(21), int64(21), nil)

	result, err := service.ListRooms(context.Background(), ListRoomsRequest{Page: 1})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalPages)
}

func TestGetRoom_Found(t *testing.T) {
	rooms := new(MockRoomReader)
	service := NewService(rooms)

	rooms.On("GetByRoomID", mock.Anything, 7).
		Return(&domain.Room{RoomID: 7, Name: "Room 7", Price: 3070}, nil)

	room, err := service.GetRoom(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 7, room.RoomID)
	assert.Equal(t, "Room 7", room.Name)
}

func TestGetRoom_NotFound(t *testing.T) {
	rooms := new(MockRoomReader)
	service := NewService(rooms)

	rooms.On("GetByRoomID", mock.Anything, 999).Return(nil, gorm.ErrRecordNotFound)

	room, err := service.GetRoom(context.Background(), 999)

	assert.Nil(t, room)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
