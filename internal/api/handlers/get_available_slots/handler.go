package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/domain"
	slotsUC "github.com/tutorhub/lesson-booking-service/internal/usecase/get_available_slots"
)

// Handler - GET /api/v1/instructors/{instructor_id}/slots
type Handler struct {
	useCase      GetAvailableSlotsUseCase
	timeProvider TimeProvider
	logger       Logger
}

func New(useCase GetAvailableSlotsUseCase, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{useCase: useCase, timeProvider: timeProvider, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := handlers.PathInt64(r, "instructor_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInstructorID)
		return
	}

	classID, err := handlers.QueryInt64(r, "class_id")
	if err != nil || classID == nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidClassID)
		return
	}

	fromDate, toDate, err := h.parseDateRange(r)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidDates)
		return
	}

	out, err := h.useCase.Handle(r.Context(), slotsUC.GetAvailableSlotsIn{
		InstructorID: instructorID,
		ClassID:      *classID,
		FromDate:     fromDate,
		ToDate:       toDate,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, newResponse(out))
}

// parseDateRange читает from/to как календарные даты; по умолчанию -
// ближайшая неделя
func (h *Handler) parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	rawFrom := query.Get("from")
	rawTo := query.Get("to")

	if rawFrom == "" && rawTo == "" {
		today := h.timeProvider.Now().UTC().Truncate(24 * time.Hour)
		return today, today.AddDate(0, 0, 6), nil
	}

	fromDate, err := time.Parse(domain.DateFormat, rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toDate, err := time.Parse(domain.DateFormat, rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return fromDate, toDate, nil
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, slotsUC.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, slotsUC.ErrClassNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgClassNotFound)
	case errors.Is(err, slotsUC.ErrAvailabilityNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgNoAvailability)
	default:
		h.logger.Error("[get_available_slots handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
