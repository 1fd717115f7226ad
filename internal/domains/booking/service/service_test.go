package service_test

import (
	"bookit/config"
	"bookit/infras/kafka"
	kafkaMocks "bookit/infras/kafka/mocks"
	otelMocks "bookit/infras/otel/mocks"
	"bookit/infras/s3"
	s3Mocks "bookit/infras/s3/mocks"
	"bookit/internal/domains/booking/mocks"
	"bookit/internal/domains/booking/model"
	"bookit/internal/domains/booking/model/dto"
	"bookit/internal/domains/booking/reference"
	"bookit/internal/domains/booking/repository"
	"bookit/internal/domains/booking/service"
	"bookit/internal/domains/pricing"
	"bookit/shared"
	"bookit/shared/cache"
	cacheMocks "bookit/shared/cache/mocks"
	"bookit/shared/failure"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	slotID       = "5f0c7a52-9a57-4a53-8f6e-0c2f1d7e3b21"
	experienceID = "0b7e8e7a-3c0e-4d0b-9b5e-6a1d2f9c4e10"
	topic        = "booking.confirmed"
)

type fixture struct {
	repo  *mocks.MockBooking
	tx    *mocks.MockTx
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
	s3    *s3Mocks.MockS3
	cfg   *config.Config
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.App.Booking.MaxQuantity = 8
	cfg.App.Booking.ReferenceRetries = 5
	cfg.App.Booking.TicketSize = 128
	cfg.Kafka.Topics.BookingConfirmed = topic

	return &fixture{
		repo:  mocks.NewMockBooking(ctrl),
		tx:    mocks.NewMockTx(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		cfg:   cfg,
	}
}

func (f *fixture) service(withS3 bool) service.Booking {
	calc := pricing.NewCalculator(6, map[string]pricing.Rule{
		"SAVE10":  {Kind: pricing.RuleKindPercent, Value: 10},
		"FLAT100": {Kind: pricing.RuleKindFlat, Value: 100},
	})

	var store s3.S3
	if withS3 {
		store = f.s3
	}

	return service.New(f.repo, calc, f.cfg, f.cache, f.kafka, store, otelMocks.NewOtel())
}

func (f *fixture) runTransaction() {
	f.repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, repository.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

// allowAfterConfirm tolerates the post-commit side effects, which run asynchronously.
func (f *fixture) allowAfterConfirm() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func bookableSlot(capacity, booked int) model.BookableSlot {
	return model.BookableSlot{
		ID:              slotID,
		ExperienceID:    experienceID,
		Date:            time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:            "09:00 am",
		Capacity:        capacity,
		BookedCount:     booked,
		Price:           1000,
		ExperienceTitle: "Kayaking",
	}
}

func cacheMiss() error {
	return fmt.Errorf("failed to get cache value: %w", cache.Nil)
}

func TestBookingService_Create(t *testing.T) {
	validRequest := dto.CreateBookingRequest{
		SlotID:    slotID,
		Quantity:  2,
		UserName:  "Asha",
		UserEmail: "asha@example.com",
		PromoCode: "save10",
	}

	tests := []struct {
		name          string
		req           dto.CreateBookingRequest
		setupMock     func(f *fixture)
		wantCode      int
		wantAvailable int
		wantErr       error
		check         func(t *testing.T, res dto.CreateBookingResponse)
	}{
		{
			name: "books seats and applies promo",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(10, 2), nil)
				f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Booking) error {
						if b.PromoCode == nil || *b.PromoCode != "SAVE10" {
							return errors.New("promo code not normalized")
						}

						return nil
					})
				f.tx.EXPECT().IncrementBookedCount(gomock.Any(), slotID, 2).Return(nil)
				f.allowAfterConfirm()
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				t.Helper()

				booking := res.Booking
				assert.True(t, reference.Valid(res.ReferenceID))
				assert.Equal(t, res.ReferenceID, booking.ReferenceID)
				assert.Equal(t, 2000, booking.Subtotal)
				assert.Equal(t, 120, booking.Taxes)
				assert.Equal(t, 200, booking.Discount)
				assert.Equal(t, 1920, booking.Total)
				assert.Equal(t, model.StatusConfirmed, booking.Status)
				assert.Equal(t, 4, booking.Slot.BookedCount)
				assert.Equal(t, "2026-11-02", booking.Slot.Date)
				assert.Equal(t, "Kayaking", booking.Slot.Experience.Title)
			},
		},
		{
			name: "books without promo",
			req:  dto.CreateBookingRequest{SlotID: slotID, Quantity: 1, UserName: "Ravi", UserEmail: "ravi@example.com"},
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(1, 0), nil)
				f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().IncrementBookedCount(gomock.Any(), slotID, 1).Return(nil)
				f.allowAfterConfirm()
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				t.Helper()

				assert.Nil(t, res.Booking.PromoCode)
				assert.Equal(t, 1060, res.Booking.Total)
				assert.Equal(t, 1, res.Booking.Slot.BookedCount)
			},
		},
		{
			name: "unknown promo code books without discount",
			req:  dto.CreateBookingRequest{SlotID: slotID, Quantity: 1, UserName: "Asha", UserEmail: "asha@example.com", PromoCode: "summer-sale"},
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(8, 0), nil)
				f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().IncrementBookedCount(gomock.Any(), slotID, 1).Return(nil)
				f.allowAfterConfirm()
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				t.Helper()

				require.NotNil(t, res.Booking.PromoCode)
				assert.Equal(t, "SUMMER-SALE", *res.Booking.PromoCode)
				assert.Equal(t, 0, res.Booking.Discount)
				assert.Equal(t, 1060, res.Booking.Total)
			},
		},
		{
			name: "promo code with surrounding blanks still applies",
			req:  dto.CreateBookingRequest{SlotID: slotID, Quantity: 1, UserName: "Asha", UserEmail: "asha@example.com", PromoCode: " FLAT100 "},
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(8, 0), nil)
				f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().IncrementBookedCount(gomock.Any(), slotID, 1).Return(nil)
				f.allowAfterConfirm()
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				t.Helper()

				assert.Equal(t, 100, res.Booking.Discount)
				assert.Equal(t, 960, res.Booking.Total)
			},
		},
		{
			name: "retries on reference collision",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(10, 0), nil)
				gomock.InOrder(
					f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateReference).Times(2),
					f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(nil),
				)
				f.tx.EXPECT().IncrementBookedCount(gomock.Any(), slotID, 2).Return(nil)
				f.allowAfterConfirm()
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				t.Helper()

				assert.True(t, reference.Valid(res.ReferenceID))
			},
		},
		{
			name: "gives up after configured reference retries",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(10, 0), nil)
				f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateReference).Times(5)
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  service.ErrReferenceExhausted,
		},
		{
			name: "not enough seats",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(10, 9), nil)
			},
			wantCode:      http.StatusBadRequest,
			wantAvailable: 1,
		},
		{
			name: "full slot",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(10, 10), nil)
			},
			wantCode:      http.StatusBadRequest,
			wantAvailable: 0,
		},
		{
			name: "slot not found",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(model.BookableSlot{}, repository.ErrSlotNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "quantity above configured maximum",
			req:       dto.CreateBookingRequest{SlotID: slotID, Quantity: 9, UserName: "Asha", UserEmail: "asha@example.com"},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slot update fails",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(10, 0), nil)
				f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(nil)
				f.tx.EXPECT().IncrementBookedCount(gomock.Any(), slotID, 2).Return(errors.New("check constraint"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "insert fails",
			req:  validRequest,
			setupMock: func(f *fixture) {
				f.runTransaction()
				f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(bookableSlot(10, 0), nil)
				f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.service(false).Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				if available, ok := failure.GetAvailable(err); ok {
					assert.Equal(t, tt.wantAvailable, available)
				}

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestBookingService_Create_AfterConfirm(t *testing.T) {
	f := newFixture(t)
	f.runTransaction()

	slot := bookableSlot(10, 0)

	f.tx.EXPECT().LockSlot(gomock.Any(), slotID).Return(slot, nil)
	f.tx.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().IncrementBookedCount(gomock.Any(), slotID, 1).Return(nil)

	f.cache.EXPECT().Delete(gomock.Any(), shared.BuildCacheKey("experience:get", experienceID)).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "experience:gets:*").Return(nil)
	f.s3.EXPECT().
		UploadFileBytes(gomock.Any(), "", "tickets", gomock.Any(), "image/png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
			if !bytes.HasPrefix(data, []byte("\x89PNG")) {
				return "", errors.New("not a png")
			}

			return "https://cdn.example.com/tickets/" + fileName, nil
		})

	published := make(chan kafka.Message, 1)

	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			published <- messages[0]

			return nil
		})

	res, err := f.service(true).Create(context.Background(), dto.CreateBookingRequest{
		SlotID:    slotID,
		Quantity:  1,
		UserName:  "Asha",
		UserEmail: "asha@example.com",
	})
	require.NoError(t, err)

	select {
	case msg := <-published:
		assert.Equal(t, res.ReferenceID, msg.Key)

		event, ok := msg.Value.(dto.BookingConfirmedEvent)
		require.True(t, ok)
		assert.Equal(t, res.ReferenceID, event.ReferenceID)
		assert.Equal(t, experienceID, event.ExperienceID)
		assert.Equal(t, 1060, event.Total)
		assert.Equal(t, "https://cdn.example.com/tickets/"+res.ReferenceID+".png", event.TicketURL)
	case <-time.After(5 * time.Second):
		t.Fatal("booking confirmed event was not published")
	}
}

func TestBookingService_Quote(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func(f *fixture)
		wantCode  int
		check     func(t *testing.T, res dto.QuoteResponse)
	}{
		{
			name: "quotes with flat promo",
			req:  dto.QuoteRequest{SlotID: slotID, Quantity: 3, PromoCode: "flat100"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetSlot(gomock.Any(), slotID).Return(bookableSlot(10, 2), nil)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				t.Helper()

				assert.Equal(t, 3000, res.Subtotal)
				assert.Equal(t, 180, res.Taxes)
				assert.Equal(t, 100, res.Discount)
				assert.Equal(t, 3080, res.Total)
				assert.True(t, res.PromoApplied)
				assert.Equal(t, "FLAT100", res.PromoCode)
				assert.Equal(t, 8, res.Available)
				assert.True(t, res.Bookable)
				assert.Equal(t, "2026-11-02", res.Date)
			},
		},
		{
			name: "unknown promo is ignored",
			req:  dto.QuoteRequest{SlotID: slotID, Quantity: 1, PromoCode: "NOPE"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetSlot(gomock.Any(), slotID).Return(bookableSlot(10, 2), nil)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				t.Helper()

				assert.False(t, res.PromoApplied)
				assert.Equal(t, 0, res.Discount)
				assert.Equal(t, 1060, res.Total)
			},
		},
		{
			name: "not bookable when seats are short",
			req:  dto.QuoteRequest{SlotID: slotID, Quantity: 4},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetSlot(gomock.Any(), slotID).Return(bookableSlot(10, 7), nil)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				t.Helper()

				assert.Equal(t, 3, res.Available)
				assert.False(t, res.Bookable)
			},
		},
		{
			name: "slot not found",
			req:  dto.QuoteRequest{SlotID: slotID, Quantity: 1},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetSlot(gomock.Any(), slotID).Return(model.BookableSlot{}, repository.ErrSlotNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req:  dto.QuoteRequest{SlotID: slotID, Quantity: 1},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetSlot(gomock.Any(), slotID).Return(model.BookableSlot{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.service(false).Quote(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestBookingService_GetByReference(t *testing.T) {
	detail := model.BookingDetail{
		Booking: model.Booking{
			ID:          "b1",
			SlotID:      slotID,
			ReferenceID: "ABCD1234",
			Quantity:    2,
			Total:       2120,
			Status:      model.StatusConfirmed,
		},
		SlotDate:        time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		ExperienceID:    experienceID,
		ExperienceTitle: "Kayaking",
	}

	filter := shared.FilterByID("ABCD1234", model.FieldReferenceID, model.TableName)

	tests := []struct {
		name      string
		ref       string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "found with lower-case reference",
			ref:  "abcd1234",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:ABCD1234", gomock.Any()).Return(cacheMiss())
				f.repo.EXPECT().GetDetail(gomock.Any(), filter).Return(detail, nil)
				f.cache.EXPECT().Save(gomock.Any(), "booking:get:ABCD1234", gomock.Any(), 60).Return(nil).AnyTimes()
			},
		},
		{
			name: "served from cache",
			ref:  "ABCD1234",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:ABCD1234", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.BookingDetailResponse)
						res.ReferenceID = "ABCD1234"
						res.Slot.Experience.Title = "Kayaking"

						return nil
					})
			},
		},
		{
			name: "unknown reference",
			ref:  "ZZZZ9999",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
				f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.BookingDetail{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed reference skips the lookup",
			ref:       "ABC",
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusNotFound,
		},
		{
			name: "repository error",
			ref:  "ABCD1234",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
				f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.BookingDetail{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.service(false).GetByReference(context.Background(), tt.ref)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ABCD1234", res.ReferenceID)
			assert.Equal(t, "Kayaking", res.Slot.Experience.Title)
		})
	}
}

func TestBookingService_Ticket(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "booking:get:ABCD1234", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*dto.BookingDetailResponse)
			res.ReferenceID = "ABCD1234"

			return nil
		})
	f.cache.EXPECT().Get(gomock.Any(), "booking:ticket:ABCD1234", gomock.Any()).Return(cacheMiss())
	f.cache.EXPECT().Save(gomock.Any(), "booking:ticket:ABCD1234", gomock.Any(), 60).Return(nil).AnyTimes()

	png, err := f.service(false).Ticket(context.Background(), "abcd1234")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
