package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/table"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/database/postgresql"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
)

type Booking interface {
	CreateBooking(ctx context.Context, booking genmodel.Bookings) (string, error)
	GetBookingsByUser(ctx context.Context, userID string) ([]genmodel.Bookings, error)
	GetBookingsByGuide(ctx context.Context, guideID string) ([]genmodel.Bookings, error)
	GetBookings(ctx context.Context) ([]genmodel.Bookings, error)
}

type booking struct {
	pgPool *pgxpool.Pool
}

func NewBookingRepository(pgPool *pgxpool.Pool) Booking {
	return &booking{pgPool: pgPool}
}

// CreateBooking inserts a booking after checking the guide slot inside the
// same transaction. The check-then-insert is serialized per slot with a
// transaction-scoped advisory lock: under read committed, two concurrent
// transactions would otherwise both count zero and both insert.
func (r *booking) CreateBooking(ctx context.Context, req genmodel.Bookings) (string, error) {
	bookings := table.Bookings

	req.BookingID = uuid.MustParse(generator.UUID())
	req.Status = model.BookingStatusPending
	req.CreatedAt = time.Now()

	err := postgresql.Commit(ctx, r.pgPool, func(ctx context.Context, tx pgx.Tx) error {
		lockKey := slotLockKey(req.GuideID, req.VisitDate, req.TimeSlot)
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", lockKey); err != nil {
			return err
		}

		query, args := bookings.
			SELECT(postgres.COUNT(bookings.BookingID)).
			WHERE(
				bookings.GuideID.EQ(postgres.UUID(req.GuideID)).
					AND(bookings.VisitDate.EQ(postgres.DateT(req.VisitDate))).
					AND(bookings.TimeSlot.EQ(postgres.String(req.TimeSlot))).
					AND(bookings.Status.NOT_EQ(postgres.String(model.BookingStatusCancelled))),
			).
			Sql()

		var count int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return model.ErrSlotUnavailable
		}

		sql, args := bookings.
			INSERT(bookings.BookingID, bookings.GuideID, bookings.UserID, bookings.VisitDate, bookings.TimeSlot, bookings.Status, bookings.CreatedAt).
			MODEL(req).
			Sql()
		_, err := tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		// A unique index on the slot columns reports the same condition.
		if model.IsConflictError(err) {
			return "", model.ErrSlotUnavailable
		}
		if !errors.Is(err, model.ErrSlotUnavailable) {
			logger.Context(ctx).Error(err)
		}
		return "", err
	}

	return req.BookingID.String(), nil
}

// slotLockKey identifies one bookable slot: a guide, a day, a time slot.
func slotLockKey(guideID uuid.UUID, visitDate time.Time, timeSlot string) string {
	return guideID.String() + ":" + visitDate.Format("2006-01-02") + ":" + timeSlot
}

func (r *booking) GetBookingsByUser(ctx context.Context, userID string) ([]genmodel.Bookings, error) {
	return r.getBookings(ctx, table.Bookings.UserID.EQ(postgres.UUID(uuid.MustParse(userID))))
}

func (r *booking) GetBookingsByGuide(ctx context.Context, guideID string) ([]genmodel.Bookings, error) {
	return r.getBookings(ctx, table.Bookings.GuideID.EQ(postgres.UUID(uuid.MustParse(guideID))))
}

func (r *booking) GetBookings(ctx context.Context) ([]genmodel.Bookings, error) {
	return r.getBookings(ctx, nil)
}

func (r *booking) getBookings(ctx context.Context, condition postgres.BoolExpression) (bookings []genmodel.Bookings, err error) {
	bookingTable := table.Bookings

	stmt := bookingTable.
		SELECT(bookingTable.BookingID, bookingTable.GuideID, bookingTable.UserID, bookingTable.VisitDate, bookingTable.TimeSlot, bookingTable.Status, bookingTable.CreatedAt).
		ORDER_BY(bookingTable.VisitDate.ASC(), bookingTable.CreatedAt.ASC())
	if condition != nil {
		stmt = stmt.WHERE(condition)
	}
	query, args := stmt.Sql()

	rows, err := r.pgPool.Query(ctx, query, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking genmodel.Bookings
		err = rows.Scan(&booking.BookingID, &booking.GuideID, &booking.UserID, &booking.VisitDate, &booking.TimeSlot, &booking.Status, &booking.CreatedAt)
		if err != nil {
			logger.Context(ctx).Error(err)
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
