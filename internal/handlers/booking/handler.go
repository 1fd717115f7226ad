package booking

import (
	"bookit/infras/otel"
	"bookit/internal/domains/booking/model/dto"
	"bookit/internal/domains/booking/service"
	"bookit/shared/constant"
	"bookit/shared/validator"
	"bookit/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageBookingConfirmed = "Booking confirmed successfully"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/quote", handler.QuoteBooking)
		routerGroup.Get("/{referenceId}", handler.GetBookingByReference)
		routerGroup.Get("/{referenceId}/ticket", handler.GetBookingTicket)
	})
}

// CreateBooking books seats on a slot.
// @Summary Create a booking
// @Description Books quantity seats on a slot, applying taxes and an optional promo code. Fails when the slot has fewer seats left than requested.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking confirmed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slotId", req.SlotID).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed " + res.ReferenceID)

	response.WithJSONMessage(w, http.StatusCreated, true, messageBookingConfirmed, res)
}

// QuoteBooking prices a booking without making it.
// @Summary Quote a booking
// @Description Returns the price breakdown and current availability for a prospective booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/quote [post]
func (handler *Handler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteBooking")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slotId", req.SlotID).Msg("failed to quote booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByReference returns a booking with its slot and experience.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param referenceId path string true "Booking reference"
// @Success 200 {object} response.Data[dto.BookingDetailResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{referenceId} [get]
func (handler *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByReference")
	defer scope.End()

	referenceID := chi.URLParam(r, constant.RequestParamReferenceID)

	res, err := handler.service.GetByReference(ctx, referenceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("referenceId", referenceID).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingTicket returns the booking's QR code.
// @Summary Get a booking ticket
// @Tags Booking
// @Produce png
// @Param referenceId path string true "Booking reference"
// @Success 200 {file} binary
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{referenceId}/ticket [get]
func (handler *Handler) GetBookingTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingTicket")
	defer scope.End()

	referenceID := chi.URLParam(r, constant.RequestParamReferenceID)

	png, err := handler.service.Ticket(ctx, referenceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("referenceId", referenceID).Msg("failed to get ticket")

		response.WithError(w, err)

		return
	}

	response.WithPNG(w, png)
}
