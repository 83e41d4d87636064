package get_student_bookings

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings/models"
)

// Сообщения об ошибках
const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgInvalidStudentID = "некорректный идентификатор студента"
	msgInvalidStatus    = "некорректный статус"
	msgAccessDenied     = "нет доступа к бронированиям студента"
	msgInternalError    = "внутренняя ошибка сервиса"
)

// BookingListResponse - список бронирований студента
type BookingListResponse struct {
	Bookings []model.BookingResponse `json:"bookings"`
}

// Handler - GET /api/v1/students/{student_id}/bookings
type Handler struct {
	service BookingsService
	logger  Logger
}

func New(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	studentID, err := handlers.PathInt64(r, "student_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidStudentID)
		return
	}

	status, err := parseStatus(r)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidStatus)
		return
	}

	result, err := h.service.GetStudentBookings(r.Context(), studentID, status, models.Actor{
		ID:   actorID,
		Role: models.ActorRole(role),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookingListResponse{
		Bookings: model.NewBookingListResponse(result),
	})
}

func parseStatus(r *http.Request) (*domain.BookingStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	status := domain.BookingStatus(raw)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return &status, nil
	default:
		return nil, errors.New("unknown status")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookings.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, bookings.ErrAccessDenied):
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
	default:
		h.logger.Error("[get_student_bookings handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
