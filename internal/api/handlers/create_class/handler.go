package create_class

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	"github.com/tutorhub/lesson-booking-service/internal/domain"
	classesSvc "github.com/tutorhub/lesson-booking-service/internal/service/classes"
)

// Сообщения об ошибках
const (
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgInvalidBody   = "некорректное тело запроса"
	msgAccessDenied  = "создавать занятия может только их владелец"
	msgInternalError = "внутренняя ошибка сервиса"
)

// CreateClassRequest - запрос на создание типа занятия
type CreateClassRequest struct {
	InstructorID int64   `json:"instructor_id"`
	Title        string  `json:"title"`
	Mode         string  `json:"mode"`
	Capacity     int     `json:"capacity"`
	Price        float64 `json:"price"`
	GroupPrice   float64 `json:"group_price"`
}

// Handler - POST /api/v1/classes
type Handler struct {
	service ClassesService
	logger  Logger
}

func New(service ClassesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	var req CreateClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.InstructorID == 0 {
		req.InstructorID = actorID
	}

	if role != "admin" && actorID != req.InstructorID {
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	created, err := h.service.Create(r.Context(), &domain.Class{
		InstructorID: req.InstructorID,
		Title:        req.Title,
		Mode:         domain.ClassMode(req.Mode),
		Capacity:     req.Capacity,
		Price:        req.Price,
		GroupPrice:   req.GroupPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, classesSvc.ErrValidation):
			handlers.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("[create_class handler] internal error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, model.NewClassResponse(created))
}
