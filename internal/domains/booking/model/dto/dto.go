package dto

import (
	"bookit/internal/domains/booking/model"
	"bookit/internal/domains/pricing"
	"bookit/shared/constant"
	"time"
)

type CreateBookingRequest struct {
	SlotID    string `json:"slotId"    validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"required,gte=1,lte=8"`
	UserName  string `json:"userName"  validate:"required,min=2,max=100"`
	UserEmail string `json:"userEmail" validate:"required,email,max=255"`
	PromoCode string `json:"promoCode" validate:"omitempty,max=32"`
}

type QuoteRequest struct {
	SlotID    string `json:"slotId"    validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"required,gte=1,lte=8"`
	PromoCode string `json:"promoCode" validate:"omitempty,max=32"`
}

type BookingResponse struct {
	ID          string    `json:"id"`
	SlotID      string    `json:"slotId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	PromoCode   *string   `json:"promoCode"`
	Quantity    int       `json:"quantity"`
	Subtotal    int       `json:"subtotal"`
	Taxes       int       `json:"taxes"`
	Discount    int       `json:"discount"`
	Total       int       `json:"total"`
	ReferenceID string    `json:"referenceId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.SlotID = m.SlotID
	r.UserName = m.UserName
	r.UserEmail = m.UserEmail
	r.PromoCode = m.PromoCode
	r.Quantity = m.Quantity
	r.Subtotal = m.Subtotal
	r.Taxes = m.Taxes
	r.Discount = m.Discount
	r.Total = m.Total
	r.ReferenceID = m.ReferenceID
	r.Status = m.Status
	r.CreatedAt = m.CreatedAt
}

type BookingExperience struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Price    int    `json:"price"`
	ImageURL string `json:"imageUrl"`
	Duration string `json:"duration"`
	Category string `json:"category"`
}

type BookingSlot struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Capacity    int               `json:"capacity"`
	BookedCount int               `json:"bookedCount"`
	Experience  BookingExperience `json:"experience"`
}

// BookingDetailResponse is a booking with its slot and experience nested.
type BookingDetailResponse struct {
	BookingResponse
	Slot BookingSlot `json:"slot"`
}

func (r *BookingDetailResponse) FromModel(m model.BookingDetail) {
	r.BookingResponse.FromModel(m.Booking)
	r.Slot = BookingSlot{
		ID:          m.SlotID,
		Date:        m.SlotDate.Format(constant.DateOnlyFormat),
		Time:        m.SlotTime,
		Capacity:    m.SlotCapacity,
		BookedCount: m.SlotBookedCount,
		Experience: BookingExperience{
			ID:       m.ExperienceID,
			Title:    m.ExperienceTitle,
			Location: m.ExperienceLocation,
			Price:    m.ExperiencePrice,
			ImageURL: m.ExperienceImageURL,
			Duration: m.ExperienceDuration,
			Category: m.ExperienceCategory,
		},
	}
}

type CreateBookingResponse struct {
	Booking     BookingDetailResponse `json:"booking"`
	ReferenceID string                `json:"referenceId"`
}

type QuoteResponse struct {
	pricing.Breakdown
	SlotID          string `json:"slotId"`
	ExperienceID    string `json:"experienceId"`
	ExperienceTitle string `json:"experienceTitle"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Available       int    `json:"available"`
	Bookable        bool   `json:"bookable"`
}

// BookingConfirmedEvent is the payload published after a booking commits.
type BookingConfirmedEvent struct {
	BookingID    string    `json:"bookingId"`
	ReferenceID  string    `json:"referenceId"`
	SlotID       string    `json:"slotId"`
	ExperienceID string    `json:"experienceId"`
	UserEmail    string    `json:"userEmail"`
	Quantity     int       `json:"quantity"`
	Total        int       `json:"total"`
	PromoCode    *string   `json:"promoCode,omitempty"`
	TicketURL    string    `json:"ticketUrl,omitempty"`
	ConfirmedAt  time.Time `json:"confirmedAt"`
}
