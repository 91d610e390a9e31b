package domain

import "time"

type BookingKind string

const (
	BookingKindDate BookingKind = "date"
	BookingKindStay BookingKind = "stay"
)

// StayDetails carries the detailed booking form fields.
type StayDetails struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// BookingPayload is a tagged union over the two booking form shapes:
// the simple form stores a plain date string, the detailed form stores
// a stay record. Exactly one branch is populated, selected by Kind.
type BookingPayload struct {
	Kind BookingKind  `json:"kind"`
	Date string       `json:"date,omitempty"`
	Stay *StayDetails `json:"stay,omitempty"`
}

func DatePayload(date string) *BookingPayload {
	return &BookingPayload{Kind: BookingKindDate, Date: date}
}

func StayPayload(stay StayDetails) *BookingPayload {
	return &BookingPayload{Kind: BookingKindStay, Stay: &stay}
}

// Room is a bookable unit. BookedBy, BookedAt and Booking are set only
// while Booked is true; a cancel clears all four together.
type Room struct {
	RoomID   int             `json:"room_id"`
	Name     string          `json:"name"`
	Price    int             `json:"price"`
	Rating   float64         `json:"rating"`
	Image    string          `json:"image"`
	Booked   bool            `json:"booked"`
	BookedBy string          `json:"booked_by,omitempty"`
	BookedAt *time.Time      `json:"booked_at,omitempty"`
	Booking  *BookingPayload `json:"booking_date,omitempty"`
}
