package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lic-events/vbs-api/internal/api/handler/v1/request"
	"github.com/lic-events/vbs-api/internal/api/handler/v1/response"
	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/service"
)

type ParticipantService interface {
	CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	GetParticipant(ctx context.Context, id uint) (domain.Participant, error)
	ListParticipants(ctx context.Context, grade, lastName string) ([]domain.Participant, error)
	UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
}

type AttendanceService interface {
	Admit(ctx context.Context, participantID uint) (domain.CheckInResult, error)
	Pickup(ctx context.Context, participantID uint, pickupPerson string) (domain.PickupResult, error)
	Status(ctx context.Context, participantID uint) (domain.AttendanceStatus, error)
}

type ParticipantHandler struct {
	svc        ParticipantService
	attendance AttendanceService
}

func NewParticipantHandler(svc ParticipantService, attendance AttendanceService) *ParticipantHandler {
	return &ParticipantHandler{
		svc:        svc,
		attendance: attendance,
	}
}

// HandleCreateParticipant godoc
//
//	@Summary  Registers a new participant
//	@Tags     participants
//	@Accept   json
//	@Produce  json
//	@Param    request body request.CreateParticipantRequest true "participant to register"
//	@Success  201 {object} domain.Participant
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /participants [post]
func (h *ParticipantHandler) HandleCreateParticipant(ctx *gin.Context) {
	var req request.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateParticipant(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListParticipants godoc
//
//	@Summary  Lists participants, optionally filtered
//	@Tags     participants
//	@Produce  json
//	@Param    grade     query string false "exact grade filter"
//	@Param    last_name query string false "case-insensitive last name prefix"
//	@Success  200 {array} domain.Participant
//	@Failure  500 {object} response.Err
//	@Router   /participants [get]
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	participants, err := h.svc.ListParticipants(ctx.Request.Context(), ctx.Query("grade"), ctx.Query("last_name"))
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleGetParticipant godoc
//
//	@Summary  Gets a participant by ID
//	@Tags     participants
//	@Produce  json
//	@Param    id path int true "participant ID"
//	@Success  200 {object} domain.Participant
//	@Failure  400 {object} response.Err
//	@Failure  404 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /participants/{id} [get]
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleUpdateParticipant godoc
//
//	@Summary  Updates a participant's registration details
//	@Tags     participants
//	@Accept   json
//	@Produce  json
//	@Param    id      path int true "participant ID"
//	@Param    request body request.CreateParticipantRequest true "updated details"
//	@Success  200 {object} domain.Participant
//	@Failure  400 {object} response.Err
//	@Failure  404 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /participants/{id} [put]
func (h *ParticipantHandler) HandleUpdateParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req request.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant := req.ToDomain()
	participant.ID = id

	updated, err := h.svc.UpdateParticipant(ctx.Request.Context(), participant)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleAdmitParticipant godoc
//
//	@Summary  Records today's attendance for a participant
//	@Description Issues a pickup code and notifies the guardian by SMS on a
//	@Description fresh check-in. Repeating the call on the same day is a no-op
//	@Description that reports already_recorded.
//	@Tags     participants
//	@Produce  json
//	@Param    id path int true "participant ID"
//	@Success  200 {object} response.AdmitResponse
//	@Failure  400 {object} response.Err
//	@Failure  404 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /participants/{id}/admit [post]
func (h *ParticipantHandler) HandleAdmitParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	result, err := h.attendance.Admit(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEventDate):
			response.RenderErr(ctx, response.ErrBadRequest(
				errors.New("You can only record attendance on a valid VBS date for this year")))
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	if result.AlreadyRecorded {
		ctx.JSON(http.StatusOK, response.AdmitResponse{
			Detail:          "This participant has already been marked as present for today.",
			AlreadyRecorded: true,
		})
		return
	}

	ctx.JSON(http.StatusOK, response.AdmitResponse{
		Detail:     "Attendance recorded successfully",
		PickupCode: result.PickupCode,
	})
}

// HandlePickupParticipant godoc
//
//	@Summary  Records that a participant was picked up today
//	@Tags     participants
//	@Accept   json
//	@Produce  json
//	@Param    id      path int true "participant ID"
//	@Param    request body request.PickupRequest true "who collected the participant"
//	@Success  200 {object} response.PickupResponse
//	@Failure  400 {object} response.Err
//	@Failure  404 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /participants/{id}/pickup [post]
func (h *ParticipantHandler) HandlePickupParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req request.PickupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.attendance.Pickup(ctx.Request.Context(), id, req.PickupPerson)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEventDate):
			response.RenderErr(ctx, response.ErrBadRequest(
				errors.New("You can only record pickup on a valid VBS date for this year")))
		case errors.Is(err, service.ErrMissingPickupPerson):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMissingPickupPerson))
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	if result.AlreadyRecorded {
		ctx.JSON(http.StatusOK, response.PickupResponse{
			Detail:          "This participant has already been marked as picked up today.",
			AlreadyRecorded: true,
		})
		return
	}

	ctx.JSON(http.StatusOK, response.PickupResponse{
		Detail: "Pickup recorded successfully",
	})
}

// HandleGetParticipantStatus godoc
//
//	@Summary  Returns the participant's check-in and pickup state for today
//	@Tags     participants
//	@Produce  json
//	@Param    id path int true "participant ID"
//	@Success  200 {object} domain.AttendanceStatus
//	@Failure  400 {object} response.Err
//	@Failure  404 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /participants/{id}/status [get]
func (h *ParticipantHandler) HandleGetParticipantStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	status, err := h.attendance.Status(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEventDate):
			response.RenderErr(ctx, response.ErrBadRequest(
				errors.New("You can only view attendance status on a valid VBS date for this year")))
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, status)
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid ID parameter")))
		return 0, false
	}

	return uint(id), true
}
