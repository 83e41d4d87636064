package model

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// BookingResponse - представление бронирования в API
type BookingResponse struct {
	ID           int64      `json:"id"`
	InstructorID int64      `json:"instructor_id"`
	ClassID      int64      `json:"class_id"`
	StudentID    int64      `json:"student_id"`
	StartAt      time.Time  `json:"start_at"`
	EndAt        time.Time  `json:"end_at"`
	Status       string     `json:"status"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	GroupSize    int        `json:"group_size"`
	OccupantRefs []string   `json:"occupant_refs,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewBookingResponse собирает ответ из доменного бронирования
func NewBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		InstructorID: b.InstructorID,
		ClassID:      b.ClassID,
		StudentID:    b.StudentID,
		StartAt:      b.StartAt,
		EndAt:        b.EndAt,
		Status:       string(b.Status),
		ExpiresAt:    b.ExpiresAt,
		GroupSize:    b.GroupSize,
		OccupantRefs: b.OccupantRefs,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// NewBookingListResponse собирает список ответов
func NewBookingListResponse(items []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		result = append(result, NewBookingResponse(b))
	}
	return result
}
