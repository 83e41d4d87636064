package models

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// ActorRole - роль запрашивающего пользователя
type ActorRole string

const (
	RoleStudent    ActorRole = "student"
	RoleInstructor ActorRole = "instructor"
	RoleAdmin      ActorRole = "admin"
)

// Actor - идентификация запрашивающего пользователя
type Actor struct {
	ID   int64
	Role ActorRole
}

// InstructorBookingsQuery - параметры выборки бронирований преподавателя
type InstructorBookingsQuery struct {
	InstructorID int64
	ClassID      *int64
	FromAt       *time.Time
	ToAt         *time.Time
	Status       *domain.BookingStatus
}
