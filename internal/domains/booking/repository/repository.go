package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bookit/infras/otel"
	"bookit/infras/postgres"
	"bookit/internal/domains/booking/model"
	"bookit/shared/constant"
	gDto "bookit/shared/dto"
	"bookit/shared/logger"
	gRepo "bookit/shared/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	savepointInsert = "booking_insert"

	querySlot = `SELECT slots.id, slots.experience_id, slots.date, slots.time, slots.capacity, slots.booked_count,
		experiences.price, experiences.title, experiences.location, experiences.image_url,
		experiences.duration, experiences.category
	FROM slots
	JOIN experiences ON experiences.id = slots.experience_id
	WHERE slots.id = $1`

	queryIncrementBookedCount = `UPDATE slots SET booked_count = booked_count + $1 WHERE id = $2`
)

var (
	ErrSlotNotFound       = errors.New("slot not found")
	ErrDuplicateReference = errors.New("duplicate booking reference")
)

// Tx is the set of writes available inside a booking transaction.
type Tx interface {
	// LockSlot reads the slot with a row lock held until the transaction ends.
	LockSlot(ctx context.Context, slotID string) (model.BookableSlot, error)
	// InsertBooking returns ErrDuplicateReference when the reference is taken; the
	// transaction stays usable in that case.
	InsertBooking(ctx context.Context, booking model.Booking) error
	IncrementBookedCount(ctx context.Context, slotID string, quantity int) error
}

type Booking interface {
	// WithTransaction runs fn in one READ COMMITTED transaction on the write pool.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	GetSlot(ctx context.Context, slotID string) (model.BookableSlot, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingDetail, error)
}

type repositoryImpl struct {
	bookings gRepo.Repository[model.Booking]
	details  gRepo.Repository[model.BookingDetail]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		bookings: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otel),
		details:  gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, db, otel),
		db:       db,
		otel:     otel,
	}
}

func (r *repositoryImpl) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.WithTransaction")
	defer scope.End()

	opts := &sql.TxOptions{Isolation: sql.LevelReadCommitted}

	err := r.db.WithTransaction(ctx, opts, func(sqlTx *sqlx.Tx) error {
		return fn(ctx, &txImpl{repo: r, tx: sqlTx})
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

// GetSlot is the unlocked read used for quotes.
func (r *repositoryImpl) GetSlot(ctx context.Context, slotID string) (model.BookableSlot, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetSlot")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySlot)

	return getSlot(ctx, r.db.Read, querySlot, slotID)
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingDetail, error) {
	return r.details.Get(ctx, filter, columns...) //nolint:wrapcheck
}

type txImpl struct {
	repo *repositoryImpl
	tx   *sqlx.Tx
}

func (t *txImpl) LockSlot(ctx context.Context, slotID string) (model.BookableSlot, error) {
	ctx, scope := t.repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockSlot")
	defer scope.End()

	query := querySlot + " FOR UPDATE OF slots"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	slot, err := getSlot(ctx, t.tx, query, slotID)
	if err != nil && !errors.Is(err, ErrSlotNotFound) {
		scope.TraceError(err)
	}

	return slot, err
}

func (t *txImpl) InsertBooking(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := t.repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertBooking")
	defer scope.End()

	if _, err = t.tx.ExecContext(ctx, "SAVEPOINT "+savepointInsert); err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}

	err = t.repo.bookings.InsertTx(ctx, t.tx, booking)
	if err == nil {
		if _, err = t.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepointInsert); err != nil {
			return fmt.Errorf("failed to release savepoint: %w", err)
		}

		return nil
	}

	if !isReferenceViolation(err) {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if _, rbErr := t.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepointInsert); rbErr != nil {
		return fmt.Errorf("failed to rollback to savepoint: %w", rbErr)
	}

	scope.AddEvent("reference collision")

	return ErrDuplicateReference
}

func (t *txImpl) IncrementBookedCount(ctx context.Context, slotID string, quantity int) error {
	ctx, scope := t.repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.IncrementBookedCount")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryIncrementBookedCount)

	result, err := t.tx.ExecContext(ctx, queryIncrementBookedCount, quantity, slotID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment booked count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected != 1 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}

	return nil
}

type getter interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func getSlot(ctx context.Context, db getter, query, slotID string) (model.BookableSlot, error) {
	var slot model.BookableSlot

	err := db.GetContext(ctx, &slot, query, slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return slot, ErrSlotNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return slot, fmt.Errorf("failed to get slot: %w", err)
	}

	return slot, nil
}

func isReferenceViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == constant.PqErrorCodeUniqueViolation && pqErr.Constraint == model.ConstraintReferenceID
}
