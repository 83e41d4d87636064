package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	bookingRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings/models"
)

// Service - чтение бронирований с контролем доступа:
// студент видит только свои, преподаватель - только свои занятия,
// администратор - всё
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

func New(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, bookingID int64, actor models.Actor) (*domain.Booking, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking_id must be positive", ErrValidation)
	}
	if actor.ID <= 0 {
		return nil, fmt.Errorf("%w: actor id must be positive", ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: GetByID - get booking: %v", ErrInternal, err)
	}

	if err := s.checkAccess(booking, actor); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetStudentBookings возвращает бронирования студента
func (s *Service) GetStudentBookings(ctx context.Context, studentID int64, status *domain.BookingStatus, actor models.Actor) ([]*domain.Booking, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: student_id must be positive", ErrValidation)
	}
	if actor.Role == models.RoleStudent && actor.ID != studentID {
		return nil, fmt.Errorf("%w: student_id=%d", ErrAccessDenied, studentID)
	}
	if actor.Role == models.RoleInstructor {
		return nil, fmt.Errorf("%w: student_id=%d", ErrAccessDenied, studentID)
	}

	result, err := s.bookingRepo.GetByStudentID(ctx, studentID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStudentBookings - get bookings: %v", ErrInternal, err)
	}
	return result, nil
}

// GetInstructorBookings возвращает бронирования преподавателя с фильтрацией
func (s *Service) GetInstructorBookings(ctx context.Context, query models.InstructorBookingsQuery, actor models.Actor) ([]*domain.Booking, error) {
	if query.InstructorID <= 0 {
		return nil, fmt.Errorf("%w: instructor_id must be positive", ErrValidation)
	}
	if actor.Role == models.RoleInstructor && actor.ID != query.InstructorID {
		return nil, fmt.Errorf("%w: instructor_id=%d", ErrAccessDenied, query.InstructorID)
	}
	if actor.Role == models.RoleStudent {
		return nil, fmt.Errorf("%w: instructor_id=%d", ErrAccessDenied, query.InstructorID)
	}
	if query.FromAt != nil && query.ToAt != nil && query.ToAt.Before(*query.FromAt) {
		return nil, fmt.Errorf("%w: to must not be before from", ErrValidation)
	}

	result, err := s.bookingRepo.GetByInstructorWithFilter(ctx, domain.InstructorBookingsFilter{
		InstructorID:    query.InstructorID,
		ClassID:         query.ClassID,
		FromAt:          query.FromAt,
		ToAt:            query.ToAt,
		Status:          query.Status,
		IncludeInactive: query.Status != nil,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetInstructorBookings - get bookings: %v", ErrInternal, err)
	}
	return result, nil
}

func (s *Service) checkAccess(booking *domain.Booking, actor models.Actor) error {
	switch actor.Role {
	case models.RoleStudent:
		if booking.StudentID != actor.ID {
			return fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, booking.ID)
		}
	case models.RoleInstructor:
		if booking.InstructorID != actor.ID {
			return fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, booking.ID)
		}
	case models.RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown actor role %q", ErrValidation, actor.Role)
	}
	return nil
}
