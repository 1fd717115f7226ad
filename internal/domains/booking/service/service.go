package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"bookit/config"
	"bookit/infras/kafka"
	"bookit/infras/otel"
	"bookit/infras/s3"
	"bookit/internal/domains/booking/model"
	"bookit/internal/domains/booking/model/dto"
	"bookit/internal/domains/booking/reference"
	"bookit/internal/domains/booking/repository"
	"bookit/internal/domains/booking/ticket"
	experienceService "bookit/internal/domains/experience/service"
	"bookit/internal/domains/pricing"
	"bookit/shared"
	"bookit/shared/cache"
	"bookit/shared/constant"
	"bookit/shared/failure"
	"bookit/shared/timezone"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	CacheGetBooking = "booking:get"
	CacheGetTicket  = "booking:ticket"

	ticketDirectory    = "tickets"
	defaultMaxQuantity = 8

	messageSlotNotFound    = "Slot not found"
	messageBookingNotFound = "Booking not found"
)

var ErrReferenceExhausted = errors.New("could not allocate a unique booking reference")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	GetByReference(ctx context.Context, referenceID string) (dto.BookingDetailResponse, error)
	Ticket(ctx context.Context, referenceID string) ([]byte, error)
}

type serviceImpl struct {
	repo  repository.Booking
	calc  pricing.Calculator
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	s3    s3.S3
	otel  otel.Otel
}

// New wires the booking service. s3 may be nil, in which case tickets are not archived.
func New(repo repository.Booking, calc pricing.Calculator, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, s3 s3.S3, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		calc:  calc,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		s3:    s3,
		otel:  otel,
	}
}

// Create books quantity seats on a slot in one transaction holding the slot's row lock.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Quantity > s.maxQuantity() {
		return res, failure.BadRequestFromString(fmt.Sprintf("quantity must be less than or equal to %d", s.maxQuantity())) // nolint:wrapcheck
	}

	var detail model.BookingDetail

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		slot, err := tx.LockSlot(ctx, req.SlotID)
		if errors.Is(err, repository.ErrSlotNotFound) {
			return failure.NotFound(messageSlotNotFound) // nolint:wrapcheck
		}

		if err != nil {
			return fmt.Errorf("failed to lock slot: %w", err)
		}

		if available := slot.Available(); available < req.Quantity {
			return failure.CapacityExceeded(available) // nolint:wrapcheck
		}

		breakdown := s.calc.Quote(slot.Price, req.Quantity, req.PromoCode)
		booking := newBooking(req, breakdown)

		if err := s.insertWithRetry(ctx, tx, &booking); err != nil {
			return err
		}

		if err := tx.IncrementBookedCount(ctx, slot.ID, booking.Quantity); err != nil {
			return fmt.Errorf("failed to update slot: %w", err)
		}

		slot.BookedCount += booking.Quantity
		detail = slot.Detail(booking)

		return nil
	})
	if err != nil {
		if failure.GetCode(err) >= 500 { //nolint:mnd
			log.Error().Err(err).Str("slotId", req.SlotID).Msg("failed to create booking")
		}

		return res, err //nolint:wrapcheck
	}

	log.Info().
		Str("referenceId", detail.ReferenceID).
		Str("slotId", detail.SlotID).
		Int("quantity", detail.Quantity).
		Int("total", detail.Total).
		Msg("booking confirmed")

	res.Booking.FromModel(detail)
	res.ReferenceID = detail.ReferenceID

	go s.afterConfirm(context.WithoutCancel(ctx), detail)

	return res, nil
}

func (s *serviceImpl) insertWithRetry(ctx context.Context, tx repository.Tx, booking *model.Booking) error {
	attempts := max(s.cfg.App.Booking.ReferenceRetries, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		ref, err := reference.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate reference: %w", err)
		}

		booking.ReferenceID = ref

		err = tx.InsertBooking(ctx, *booking)
		if err == nil {
			return nil
		}

		if !errors.Is(err, repository.ErrDuplicateReference) {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		log.Warn().Int("attempt", attempt).Msg("booking reference collision, retrying")
	}

	return fmt.Errorf("%w after %d attempts", ErrReferenceExhausted, attempts)
}

func newBooking(req dto.CreateBookingRequest, breakdown pricing.Breakdown) model.Booking {
	booking := model.Booking{
		ID:        uuid.NewString(),
		SlotID:    req.SlotID,
		UserName:  strings.TrimSpace(req.UserName),
		UserEmail: strings.TrimSpace(req.UserEmail),
		Quantity:  breakdown.Quantity,
		Subtotal:  breakdown.Subtotal,
		Taxes:     breakdown.Taxes,
		Discount:  breakdown.Discount,
		Total:     breakdown.Total,
		Status:    model.StatusConfirmed,
		CreatedAt: timezone.Now(),
	}

	if code := pricing.NormalizeCode(req.PromoCode); code != "" {
		booking.PromoCode = &code
	}

	return booking
}

// afterConfirm runs once the booking is committed. Failures are logged only.
func (s *serviceImpl) afterConfirm(ctx context.Context, detail model.BookingDetail) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(experienceService.CacheGetExperience, detail.ExperienceID)); err != nil {
		log.Error().Err(err).Str("experienceId", detail.ExperienceID).Msg("failed to invalidate experience cache")
	}

	shared.InvalidateCaches(ctx, s.cache, experienceService.CacheGetAllExperience)

	var ticketURL string

	if s.s3 != nil {
		url, err := s.archiveTicket(ctx, detail.ReferenceID)
		if err != nil {
			log.Error().Err(err).Str("referenceId", detail.ReferenceID).Msg("failed to archive ticket")
		}

		ticketURL = url
	}

	event := dto.BookingConfirmedEvent{
		BookingID:    detail.ID,
		ReferenceID:  detail.ReferenceID,
		SlotID:       detail.SlotID,
		ExperienceID: detail.ExperienceID,
		UserEmail:    detail.UserEmail,
		Quantity:     detail.Quantity,
		Total:        detail.Total,
		PromoCode:    detail.PromoCode,
		TicketURL:    ticketURL,
		ConfirmedAt:  detail.CreatedAt,
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingConfirmed, kafka.Message{
		Key:   detail.ReferenceID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("referenceId", detail.ReferenceID).Msg("failed to publish booking confirmed event")
	}
}

func (s *serviceImpl) archiveTicket(ctx context.Context, referenceID string) (string, error) {
	png, err := ticket.Render(referenceID, s.cfg.App.Booking.TicketSize)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	url, err := s.s3.UploadFileBytes(ctx, "", ticketDirectory, ticket.FileName(referenceID), constant.ContentTypePNG, png)
	if err != nil {
		return "", fmt.Errorf("failed to upload ticket: %w", err)
	}

	return url, nil
}

// Quote prices a prospective booking without taking a lock or writing anything.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slot, err := s.repo.GetSlot(ctx, req.SlotID)
	if errors.Is(err, repository.ErrSlotNotFound) {
		return res, failure.NotFound(messageSlotNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("slotId", req.SlotID).Msg("failed to get slot")

		return res, fmt.Errorf("failed to get slot: %w", err)
	}

	res.Breakdown = s.calc.Quote(slot.Price, req.Quantity, req.PromoCode)
	res.SlotID = slot.ID
	res.ExperienceID = slot.ExperienceID
	res.ExperienceTitle = slot.ExperienceTitle
	res.Date = slot.Date.Format(constant.DateOnlyFormat)
	res.Time = slot.Time
	res.Available = slot.Available()
	res.Bookable = res.Available >= req.Quantity && req.Quantity <= s.maxQuantity()

	return res, nil
}

// GetByReference looks a booking up by its reference code, case-insensitively.
func (s *serviceImpl) GetByReference(ctx context.Context, referenceID string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByReference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	referenceID = strings.ToUpper(strings.TrimSpace(referenceID))
	if !reference.Valid(referenceID) {
		return res, failure.NotFound(messageBookingNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(CacheGetBooking, referenceID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(referenceID, model.FieldReferenceID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("referenceId", referenceID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == "" {
		return res, failure.NotFound(messageBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(detail)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Ticket renders the booking's QR code as PNG.
func (s *serviceImpl) Ticket(ctx context.Context, referenceID string) (png []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Ticket")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.GetByReference(ctx, referenceID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(CacheGetTicket, booking.ReferenceID)

	if err = s.cache.Get(ctx, cacheKey, &png); err == nil {
		return png, nil
	}

	png, err = ticket.Render(booking.ReferenceID, s.cfg.App.Booking.TicketSize)
	if err != nil {
		log.Error().Err(err).Str("referenceId", booking.ReferenceID).Msg("failed to render ticket")

		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, png, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ticket to cache")
		}
	}()

	return png, nil
}

func (s *serviceImpl) maxQuantity() int {
	if s.cfg.App.Booking.MaxQuantity <= 0 {
		return defaultMaxQuantity
	}

	return s.cfg.App.Booking.MaxQuantity
}
