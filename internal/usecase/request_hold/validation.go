package request_hold

import (
	"fmt"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

func (u *UseCase) validate(in RequestHoldIn) error {
	if in.StudentID <= 0 {
		return fmt.Errorf("%w: student_id must be positive", ErrValidation)
	}
	if in.InstructorID <= 0 {
		return fmt.Errorf("%w: instructor_id must be positive", ErrValidation)
	}
	if in.ClassID <= 0 {
		return fmt.Errorf("%w: class_id must be positive", ErrValidation)
	}
	if in.StartAt.IsZero() {
		return fmt.Errorf("%w: start_at is required", ErrValidation)
	}
	if !in.EndAt.IsZero() && !in.EndAt.After(in.StartAt) {
		return fmt.Errorf("%w: end_at must be after start_at", ErrValidation)
	}
	if in.GroupSize < 1 || in.GroupSize > domain.MaxGroupSize {
		return fmt.Errorf("%w: group_size must be between 1 and %d", ErrValidation, domain.MaxGroupSize)
	}
	if len(in.OccupantRefs) > 0 && len(in.OccupantRefs) != in.GroupSize {
		return fmt.Errorf("%w: occupant_refs count must match group_size", ErrValidation)
	}
	return nil
}
