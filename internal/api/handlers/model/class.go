package model

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// ClassResponse - представление типа занятия в API
type ClassResponse struct {
	ID           int64     `json:"id"`
	InstructorID int64     `json:"instructor_id"`
	Title        string    `json:"title"`
	Mode         string    `json:"mode"`
	Capacity     int       `json:"capacity,omitempty"`
	Price        float64   `json:"price,omitempty"`
	GroupPrice   float64   `json:"group_price,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewClassResponse собирает ответ из доменного типа занятия
func NewClassResponse(c *domain.Class) ClassResponse {
	return ClassResponse{
		ID:           c.ID,
		InstructorID: c.InstructorID,
		Title:        c.Title,
		Mode:         string(c.Mode),
		Capacity:     c.Capacity,
		Price:        c.Price,
		GroupPrice:   c.GroupPrice,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// NewClassListResponse собирает список ответов
func NewClassListResponse(items []*domain.Class) []ClassResponse {
	result := make([]ClassResponse, 0, len(items))
	for _, c := range items {
		result = append(result, NewClassResponse(c))
	}
	return result
}
