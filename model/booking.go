package model

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	BookingID string    `json:"bookingID"`
	GuideID   string    `json:"guideID"`
	UserID    string    `json:"userID"`
	VisitDate time.Time `json:"visitDate"`
	TimeSlot  string    `json:"timeSlot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBookingRequest struct {
	GuideID   string `json:"guideID" validate:"required,uuid"`
	VisitDate string `json:"visitDate" validate:"required,datetime=2006-01-02"`
	TimeSlot  string `json:"timeSlot" validate:"required,oneof=morning afternoon evening"`
}
