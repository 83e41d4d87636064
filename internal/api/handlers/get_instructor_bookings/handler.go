package get_instructor_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings/models"
)

// Сообщения об ошибках
const (
	msgUnauthorized        = "пользователь не аутентифицирован"
	msgInvalidInstructorID = "некорректный идентификатор преподавателя"
	msgInvalidQuery        = "некорректные параметры запроса"
	msgAccessDenied        = "нет доступа к бронированиям преподавателя"
	msgInternalError       = "внутренняя ошибка сервиса"
)

// BookingListResponse - список бронирований преподавателя
type BookingListResponse struct {
	Bookings []model.BookingResponse `json:"bookings"`
}

// Handler - GET /api/v1/instructors/{instructor_id}/bookings
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

	instructorID, err := handlers.PathInt64(r, "instructor_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInstructorID)
		return
	}

	query, err := parseQuery(r, instructorID)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidQuery)
		return
	}

	result, err := h.service.GetInstructorBookings(r.Context(), query, models.Actor{
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

func parseQuery(r *http.Request, instructorID int64) (models.InstructorBookingsQuery, error) {
	query := models.InstructorBookingsQuery{InstructorID: instructorID}

	classID, err := handlers.QueryInt64(r, "class_id")
	if err != nil {
		return query, err
	}
	query.ClassID = classID

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return query, err
		}
		query.FromAt = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return query, err
		}
		query.ToAt = &to
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		switch status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
			query.Status = &status
		default:
			return query, errors.New("unknown status")
		}
	}

	return query, nil
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookings.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, bookings.ErrAccessDenied):
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
	default:
		h.logger.Error("[get_instructor_bookings handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
