package classes

import (
	"context"
	"fmt"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// Service - управление типами занятий преподавателя.
type Service struct {
	classRepo ClassRepository
	logger    Logger
}

func New(classRepo ClassRepository, logger Logger) *Service {
	return &Service{
		classRepo: classRepo,
		logger:    logger,
	}
}

// Create создаёт новый тип занятия
func (s *Service) Create(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	if err := s.validate(class); err != nil {
		return nil, err
	}

	created, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - create class: %v", ErrInternal, err)
	}

	s.logger.Info("[classes] class created: class_id=%d instructor_id=%d mode=%s",
		created.ID, created.InstructorID, created.Mode)

	return created, nil
}

// ListByInstructor возвращает типы занятий преподавателя
func (s *Service) ListByInstructor(ctx context.Context, instructorID int64) ([]*domain.Class, error) {
	if instructorID <= 0 {
		return nil, fmt.Errorf("%w: instructor_id must be positive", ErrValidation)
	}

	classes, err := s.classRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByInstructor - get classes: %v", ErrInternal, err)
	}
	return classes, nil
}

func (s *Service) validate(class *domain.Class) error {
	if class.InstructorID <= 0 {
		return fmt.Errorf("%w: instructor_id must be positive", ErrValidation)
	}
	if class.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(class.Title) > domain.MaxClassTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrValidation, domain.MaxClassTitleLength)
	}

	switch class.Mode {
	case domain.ModeIndividual:
		if class.Price <= 0 {
			return fmt.Errorf("%w: price must be positive", ErrValidation)
		}
	case domain.ModeGroup:
		if class.Capacity < domain.MinGroupCapacity || class.Capacity > domain.MaxGroupCapacity {
			return fmt.Errorf("%w: capacity must be between %d and %d",
				ErrValidation, domain.MinGroupCapacity, domain.MaxGroupCapacity)
		}
		if class.GroupPrice <= 0 {
			return fmt.Errorf("%w: group_price must be positive", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown class mode %q", ErrValidation, class.Mode)
	}

	return nil
}
