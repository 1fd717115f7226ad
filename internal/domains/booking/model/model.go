package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldSlotID      = "slot_id"
	FieldReferenceID = "reference_id"
	FieldStatus      = "status"

	ConstraintReferenceID = "bookings_reference_id_key"

	StatusConfirmed = "confirmed"
)

// Booking is written once and never updated.
type Booking struct {
	ID          string    `db:"id"`
	SlotID      string    `db:"slot_id"`
	UserName    string    `db:"user_name"`
	UserEmail   string    `db:"user_email"`
	PromoCode   *string   `db:"promo_code"`
	Quantity    int       `db:"quantity"`
	Subtotal    int       `db:"subtotal"`
	Taxes       int       `db:"taxes"`
	Discount    int       `db:"discount"`
	Total       int       `db:"total"`
	ReferenceID string    `db:"reference_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

// BookingDetail is a booking read together with its slot and experience.
type BookingDetail struct {
	Booking
	SlotDate           time.Time `db:"slot_date"            table:"slots"       column:"date"`
	SlotTime           string    `db:"slot_time"            table:"slots"       column:"time"`
	SlotCapacity       int       `db:"slot_capacity"        table:"slots"       column:"capacity"`
	SlotBookedCount    int       `db:"slot_booked_count"    table:"slots"       column:"booked_count"`
	ExperienceID       string    `db:"experience_id"        table:"slots"       column:"experience_id"`
	ExperienceTitle    string    `db:"experience_title"     table:"experiences" column:"title"`
	ExperienceLocation string    `db:"experience_location"  table:"experiences" column:"location"`
	ExperiencePrice    int       `db:"experience_price"     table:"experiences" column:"price"`
	ExperienceImageURL string    `db:"experience_image_url" table:"experiences" column:"image_url"`
	ExperienceDuration string    `db:"experience_duration"  table:"experiences" column:"duration"`
	ExperienceCategory string    `db:"experience_category"  table:"experiences" column:"category"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN slots ON slots.id = bookings.slot_id JOIN experiences ON experiences.id = slots.experience_id"
}

// BookableSlot is the slot row read (and locked, inside a booking) before booking,
// with the owning experience.
type BookableSlot struct {
	ID                 string    `db:"id"`
	ExperienceID       string    `db:"experience_id"`
	Date               time.Time `db:"date"`
	Time               string    `db:"time"`
	Capacity           int       `db:"capacity"`
	BookedCount        int       `db:"booked_count"`
	Price              int       `db:"price"`
	ExperienceTitle    string    `db:"title"`
	ExperienceLocation string    `db:"location"`
	ExperienceImageURL string    `db:"image_url"`
	ExperienceDuration string    `db:"duration"`
	ExperienceCategory string    `db:"category"`
}

func (s BookableSlot) Available() int {
	return max(s.Capacity-s.BookedCount, 0)
}

// Detail joins a booking made on s, with s already holding the booking's seats.
func (s BookableSlot) Detail(booking Booking) BookingDetail {
	return BookingDetail{
		Booking:            booking,
		SlotDate:           s.Date,
		SlotTime:           s.Time,
		SlotCapacity:       s.Capacity,
		SlotBookedCount:    s.BookedCount,
		ExperienceID:       s.ExperienceID,
		ExperienceTitle:    s.ExperienceTitle,
		ExperienceLocation: s.ExperienceLocation,
		ExperiencePrice:    s.Price,
		ExperienceImageURL: s.ExperienceImageURL,
		ExperienceDuration: s.ExperienceDuration,
		ExperienceCategory: s.ExperienceCategory,
	}
}
