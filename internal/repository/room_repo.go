package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pgstay/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	RoomID      int            `gorm:"column:room_id;uniqueIndex"`
	Name        string         `gorm:"column:name"`
	Price       int            `gorm:"column:price"`
	Rating      float64        `gorm:"column:rating"`
	Image       string         `gorm:"column:image"`
	Booked      bool           `gorm:"column:booked"`
	BookedBy    *string        `gorm:"column:booked_by"`
	BookedAt    *time.Time     `gorm:"column:booked_at"`
	BookingDate datatypes.JSON `gorm:"column:booking_date"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) (*domain.Room, error) {
	room := &domain.Room{
		RoomID:   m.RoomID,
		Name:     m.Name,
		Price:    m.Price,
		Rating:   m.Rating,
		Image:    m.Image,
		Booked:   m.Booked,
		BookedAt: m.BookedAt,
	}
	if m.BookedBy != nil {
		room.BookedBy = *m.BookedBy
	}
	if len(m.BookingDate) > 0 {
		var payload domain.BookingPayload
		if err := json.Unmarshal(m.BookingDate, &payload); err != nil {
			return nil, err
		}
		room.Booking = &payload
	}
	return room, nil
}

func toRoomModel(r *domain.Room) (roomModel, error) {
	m := roomModel{
		RoomID:   r.RoomID,
		Name:     r.Name,
		Price:    r.Price,
		Rating:   r.Rating,
		Image:    r.Image,
		Booked:   r.Booked,
		BookedAt: r.BookedAt,
	}
	if r.BookedBy != "" {
		v := r.BookedBy
		m.BookedBy = &v
	}
	if r.Booking != nil {
		raw, err := json.Marshal(r.Booking)
		if err != nil {
			return roomModel{}, err
		}
		m.BookingDate = datatypes.JSON(raw)
	}
	return m, nil
}

// RoomFilters is a conjunctive filter over the room listing: every
// supplied constraint must hold. Nil pointers mean "not supplied".
type RoomFilters struct {
	MinPrice  *int
	MaxPrice  *int
	MinRating *float64
	Query     string
	Limit     int
	Offset    int
}

func (f RoomFilters) apply(tx *gorm.DB) *gorm.DB {
	if f.Query != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}
	if f.MinPrice != nil {
		tx = tx.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		tx = tx.Where("rating >= ?", *f.MinRating)
	}
	return tx
}

// List returns one page of matching rooms in store order, plus the total
// matching count and the count of matching rooms that are not booked.
func (r *RoomRepository) List(ctx context.Context, f RoomFilters) ([]domain.Room, int64, int64, error) {
	var total int64
	tx := f.apply(r.db.WithContext(ctx).Model(&roomModel{}))
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var available int64
	tx = f.apply(r.db.WithContext(ctx).Model(&roomModel{})).Where("booked = ?", false)
	if err := tx.Count(&available).Error; err != nil {
		return nil, 0, 0, err
	}

	var models []roomModel
	tx = f.apply(r.db.WithContext(ctx).Model(&roomModel{})).
		Order("id").
		Limit(f.Limit).
		Offset(f.Offset)
	if err := tx.Find(&models).Error; err != nil {
		return nil, 0, 0, err
	}

	rooms := make([]domain.Room, 0, len(models))
	for _, m := range models {
		room, err := toDomainRoom(m)
		if err != nil {
			return nil, 0, 0, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, total, available, nil
}

func (r *RoomRepository) GetByRoomID(ctx context.Context, roomID int) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m)
}

func (r *RoomRepository) GetByBookedBy(ctx context.Context, username string) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).
		Where("booked = ? AND booked_by = ?", true, username).
		Order("id").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	rooms := make([]domain.Room, 0, len(models))
	for _, m := range models {
		room, err := toDomainRoom(m)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, nil
}

// SetBooking marks the room booked in a single field-set update. It does
// not require the room to be free: an existing booking is overwritten.
func (r *RoomRepository) SetBooking(ctx context.Context, roomID int, bookedBy string, bookedAt time.Time, payload *domain.BookingPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("room_id = ?", roomID).
		Updates(map[string]any{
			"booked":       true,
			"booked_by":    bookedBy,
			"booked_at":    bookedAt,
			"booking_date": datatypes.JSON(raw),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearBooking resets the room to the unbooked state regardless of its
// current state. All booking fields are cleared in one update.
func (r *RoomRepository) ClearBooking(ctx context.Context, roomID int) error {
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("room_id = ?", roomID).
		Updates(map[string]any{
			"booked":       false,
			"booked_by":    nil,
			"booked_at":    nil,
			"booking_date": nil,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Count(&n)
	return n, tx.Error
}

func (r *RoomRepository) CountBooked(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("booked = ?", true).Count(&n)
	return n, tx.Error
}

func (r *RoomRepository) SumBookedPrices(ctx context.Context) (int64, error) {
	var total int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Select("COALESCE(SUM(price), 0)").
		Where("booked = ?", true).
		Scan(&total)
	return total, tx.Error
}

// BookingCountRow is one group-by bucket of booked rooms per user.
type BookingCountRow struct {
	BookedBy string `gorm:"column:booked_by" json:"booked_by"`
	Count    int64  `gorm:"column:count" json:"count"`
}

func (r *RoomRepository) CountBookedByUser(ctx context.Context) ([]BookingCountRow, error) {
	var rows []BookingCountRow
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Select("booked_by, COUNT(*) AS count").
		Where("booked = ?", true).
		Group("booked_by").
		Order("booked_by").
		Scan(&rows)
	return rows, tx.Error
}

func (r *RoomRepository) CreateBatch(ctx context.Context, rooms []domain.Room) error {
	models := make([]roomModel, 0, len(rooms))
	for i := range rooms {
		m, err := toRoomModel(&rooms[i])
		if err != nil {
			return err
		}
		models = append(models, m)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *RoomRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM rooms").Error
}
