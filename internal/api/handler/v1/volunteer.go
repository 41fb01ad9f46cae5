package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lic-events/vbs-api/internal/api/handler/v1/request"
	"github.com/lic-events/vbs-api/internal/api/handler/v1/response"
	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/service"
)

type VolunteerService interface {
	CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error)
	GetVolunteer(ctx context.Context, id uint) (domain.Volunteer, error)
	ListVolunteers(ctx context.Context, preferredClass, lastName string) ([]domain.Volunteer, error)
	UpdateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error)
}

type VolunteerHandler struct {
	svc VolunteerService
}

func NewVolunteerHandler(svc VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		svc: svc,
	}
}

// HandleCreateVolunteer godoc
//
//	@Summary  Registers a new volunteer
//	@Tags     volunteers
//	@Accept   json
//	@Produce  json
//	@Param    request body request.CreateVolunteerRequest true "volunteer to register"
//	@Success  201 {object} domain.Volunteer
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /volunteers [post]
func (h *VolunteerHandler) HandleCreateVolunteer(ctx *gin.Context) {
	var req request.CreateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateVolunteer(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListVolunteers godoc
//
//	@Summary  Lists volunteers, optionally filtered
//	@Tags     volunteers
//	@Produce  json
//	@Param    preferred_class query string false "exact preferred class filter"
//	@Param    last_name       query string false "case-insensitive last name prefix"
//	@Success  200 {array} domain.Volunteer
//	@Failure  500 {object} response.Err
//	@Router   /volunteers [get]
func (h *VolunteerHandler) HandleListVolunteers(ctx *gin.Context) {
	volunteers, err := h.svc.ListVolunteers(ctx.Request.Context(), ctx.Query("preferred_class"), ctx.Query("last_name"))
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, volunteers)
}

// HandleGetVolunteer godoc
//
//	@Summary  Gets a volunteer by ID
//	@Tags     volunteers
//	@Produce  json
//	@Param    id path int true "volunteer ID"
//	@Success  200 {object} domain.Volunteer
//	@Failure  400 {object} response.Err
//	@Failure  404 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /volunteers/{id} [get]
func (h *VolunteerHandler) HandleGetVolunteer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	volunteer, err := h.svc.GetVolunteer(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVolunteerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("volunteer", "ID", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, volunteer)
}

// HandleUpdateVolunteer godoc
//
//	@Summary  Updates a volunteer's registration details
//	@Tags     volunteers
//	@Accept   json
//	@Produce  json
//	@Param    id      path int true "volunteer ID"
//	@Param    request body request.CreateVolunteerRequest true "updated details"
//	@Success  200 {object} domain.Volunteer
//	@Failure  400 {object} response.Err
//	@Failure  404 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /volunteers/{id} [put]
func (h *VolunteerHandler) HandleUpdateVolunteer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req request.CreateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	volunteer := req.ToDomain()
	volunteer.ID = id

	updated, err := h.svc.UpdateVolunteer(ctx.Request.Context(), volunteer)
	if err != nil {
		if errors.Is(err, service.ErrVolunteerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("volunteer", "ID", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
