package classes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

type fakeClassRepo struct {
	nextID  int64
	classes []*domain.Class
	err     error
}

func (r *fakeClassRepo) Create(_ context.Context, class *domain.Class) (*domain.Class, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	clone := *class
	clone.ID = r.nextID
	r.classes = append(r.classes, &clone)
	return &clone, nil
}

func (r *fakeClassRepo) GetByInstructorID(_ context.Context, instructorID int64) ([]*domain.Class, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*domain.Class
	for _, c := range r.classes {
		if c.InstructorID == instructorID {
			result = append(result, c)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Individual(t *testing.T) {
	repo := &fakeClassRepo{}
	svc := New(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &domain.Class{
		InstructorID: 10, Title: "Алгебра", Mode: domain.ModeIndividual, Price: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreate_Group(t *testing.T) {
	repo := &fakeClassRepo{}
	svc := New(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &domain.Class{
		InstructorID: 10, Title: "Групповая алгебра", Mode: domain.ModeGroup, Capacity: 8, GroupPrice: 700,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, created.Capacity)
}

func TestCreate_Validation(t *testing.T) {
	svc := New(&fakeClassRepo{}, nopLogger{})

	tests := []struct {
		name  string
		class domain.Class
	}{
		{"нулевой преподаватель", domain.Class{Title: "А", Mode: domain.ModeIndividual, Price: 100}},
		{"пустое название", domain.Class{InstructorID: 10, Mode: domain.ModeIndividual, Price: 100}},
		{"слишком длинное название", domain.Class{InstructorID: 10, Title: strings.Repeat("х", 201), Mode: domain.ModeIndividual, Price: 100}},
		{"неизвестный режим", domain.Class{InstructorID: 10, Title: "А", Mode: "hybrid", Price: 100}},
		{"нулевая цена индивидуального", domain.Class{InstructorID: 10, Title: "А", Mode: domain.ModeIndividual}},
		{"вместимость группы меньше минимума", domain.Class{InstructorID: 10, Title: "А", Mode: domain.ModeGroup, Capacity: 1, GroupPrice: 100}},
		{"вместимость группы больше максимума", domain.Class{InstructorID: 10, Title: "А", Mode: domain.ModeGroup, Capacity: 51, GroupPrice: 100}},
		{"нулевая цена группы", domain.Class{InstructorID: 10, Title: "А", Mode: domain.ModeGroup, Capacity: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.class)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestListByInstructor(t *testing.T) {
	repo := &fakeClassRepo{}
	svc := New(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Class{
		InstructorID: 10, Title: "Алгебра", Mode: domain.ModeIndividual, Price: 1500,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &domain.Class{
		InstructorID: 11, Title: "Геометрия", Mode: domain.ModeIndividual, Price: 1200,
	})
	require.NoError(t, err)

	classes, err := svc.ListByInstructor(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Алгебра", classes[0].Title)
}

func TestListByInstructor_InvalidID(t *testing.T) {
	svc := New(&fakeClassRepo{}, nopLogger{})

	_, err := svc.ListByInstructor(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_RepoError(t *testing.T) {
	svc := New(&fakeClassRepo{err: errors.New("db down")}, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Class{
		InstructorID: 10, Title: "Алгебра", Mode: domain.ModeIndividual, Price: 1500,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
