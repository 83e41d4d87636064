package request_hold

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	requestHoldUC "github.com/tutorhub/lesson-booking-service/internal/usecase/request_hold"
)

// Handler - POST /api/v1/bookings/hold
type Handler struct {
	useCase RequestHoldUseCase
	logger  Logger
}

func New(useCase RequestHoldUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req RequestHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.GroupSize == 0 {
		req.GroupSize = 1
	}

	booking, err := h.useCase.Handle(r.Context(), requestHoldUC.RequestHoldIn{
		StudentID:    studentID,
		InstructorID: req.InstructorID,
		ClassID:      req.ClassID,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		GroupSize:    req.GroupSize,
		OccupantRefs: req.OccupantRefs,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, model.NewBookingResponse(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, requestHoldUC.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, requestHoldUC.ErrClassNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgClassNotFound)
	case errors.Is(err, requestHoldUC.ErrAvailabilityNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgNoAvailability)
	case errors.Is(err, requestHoldUC.ErrSlotNotAvailable):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotNotAvailable)
	case errors.Is(err, requestHoldUC.ErrSlotFull):
		handlers.RespondError(w, http.StatusConflict, msgSlotFull)
	case errors.Is(err, requestHoldUC.ErrCapacityExceeded):
		handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)
	case errors.Is(err, requestHoldUC.ErrInvalidDuration):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidDuration)
	case errors.Is(err, requestHoldUC.ErrWindowTooSoon):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgWindowTooSoon)
	case errors.Is(err, requestHoldUC.ErrWindowTooFar):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgWindowTooFar)
	case errors.Is(err, requestHoldUC.ErrInvalidGroupSize):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidGroupSize)
	case errors.Is(err, requestHoldUC.ErrPaymentFailed):
		handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)
	default:
		h.logger.Error("[request_hold handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
