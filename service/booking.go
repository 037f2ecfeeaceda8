package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
	"github.com/virtualpalace/palace-tour-service/repository"
)

type Booking interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (string, error)
	GetMyBookings(ctx context.Context) ([]model.Booking, error)
	GetGuideBookings(ctx context.Context) ([]model.Booking, error)
}

type booking struct {
	bookingRepository repository.Booking
	guideRepository   repository.Guide
}

func NewBookingService(bookingRepository repository.Booking, guideRepository repository.Guide) Booking {
	return &booking{
		bookingRepository: bookingRepository,
		guideRepository:   guideRepository,
	}
}

func (s *booking) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (string, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return "", err
	}

	if _, err = s.guideRepository.GetGuide(ctx, req.GuideID); errors.Is(err, pgx.ErrNoRows) {
		return "", err
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}

	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return "", err
	}

	bookingID, err := s.bookingRepository.CreateBooking(ctx, genmodel.Bookings{
		GuideID:   uuid.MustParse(req.GuideID),
		UserID:    uuid.MustParse(userProfile.UserID),
		VisitDate: visitDate,
		TimeSlot:  req.TimeSlot,
	})
	if err != nil {
		if !errors.Is(err, model.ErrSlotUnavailable) {
			logger.Context(ctx).Error(err)
		}
		return "", err
	}

	return bookingID, nil
}

func (s *booking) GetMyBookings(ctx context.Context) ([]model.Booking, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return nil, err
	}

	bookingInfos, err := s.bookingRepository.GetBookingsByUser(ctx, userProfile.UserID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}

	return toBookings(bookingInfos), nil
}

// GetGuideBookings returns the bookings a guide is assigned to. Admins see
// every booking; guides see only their own schedule.
func (s *booking) GetGuideBookings(ctx context.Context) ([]model.Booking, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return nil, err
	}

	if userProfile.Role == profile.Admin {
		bookingInfos, err := s.bookingRepository.GetBookings(ctx)
		if err != nil {
			logger.Context(ctx).Error(err)
			return nil, err
		}
		return toBookings(bookingInfos), nil
	}

	guideInfo, err := s.guideRepository.GetGuideByUserID(ctx, userProfile.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return []model.Booking{}, nil
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}

	bookingInfos, err := s.bookingRepository.GetBookingsByGuide(ctx, guideInfo.GuideID.String())
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}
	return toBookings(bookingInfos), nil
}

func toBookings(bookingInfos []genmodel.Bookings) []model.Booking {
	bookings := make([]model.Booking, 0, len(bookingInfos))
	for _, bookingInfo := range bookingInfos {
		bookings = append(bookings, model.Booking{
			BookingID: bookingInfo.BookingID.String(),
			GuideID:   bookingInfo.GuideID.String(),
			UserID:    bookingInfo.UserID.String(),
			VisitDate: bookingInfo.VisitDate,
			TimeSlot:  bookingInfo.TimeSlot,
			Status:    bookingInfo.Status,
			CreatedAt: bookingInfo.CreatedAt,
		})
	}
	return bookings
}
