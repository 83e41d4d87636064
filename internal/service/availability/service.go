package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	availabilityRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/availability"
)

// Service - управление расписанием преподавателя.
// Изменение расписания действует только на будущие выдачи слотов:
// уже созданные бронирования не пересматриваются.
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

func New(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Get возвращает расписание преподавателя
func (s *Service) Get(ctx context.Context, instructorID int64) (*domain.Availability, error) {
	if instructorID <= 0 {
		return nil, fmt.Errorf("%w: instructor_id must be positive", ErrValidation)
	}

	av, err := s.availabilityRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			return nil, fmt.Errorf("%w: instructor_id=%d", ErrAvailabilityNotFound, instructorID)
		}
		return nil, fmt.Errorf("%w: Get - get availability: %v", ErrInternal, err)
	}
	return av, nil
}

// Update создаёт или полностью заменяет расписание преподавателя
func (s *Service) Update(ctx context.Context, av *domain.Availability) (*domain.Availability, error) {
	if err := s.validate(av); err != nil {
		return nil, err
	}

	updated, err := s.availabilityRepo.Upsert(ctx, av)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - upsert availability: %v", ErrInternal, err)
	}

	s.logger.Info("[availability] availability updated: instructor_id=%d timezone=%s slot_duration=%d",
		updated.InstructorID, updated.Timezone, updated.SlotDurationMinutes)

	return updated, nil
}
