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

type ReferenceService interface {
	CreateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error)
	ListGrades(ctx context.Context) ([]domain.Grade, error)
	CreateChurch(ctx context.Context, church domain.Church) (domain.Church, error)
	ListChurches(ctx context.Context) ([]domain.Church, error)
	CreateAttendanceType(ctx context.Context, attendanceType domain.AttendanceType) (domain.AttendanceType, error)
	ListAttendanceTypes(ctx context.Context) ([]domain.AttendanceType, error)
	CreateSession(ctx context.Context, session domain.Session) (domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	CreatePickupPerson(ctx context.Context, person domain.PickupPerson) (domain.PickupPerson, error)
	ListPickupPersons(ctx context.Context) ([]domain.PickupPerson, error)
	CreateParent(ctx context.Context, parent domain.Parent) (domain.Parent, error)
	ListParents(ctx context.Context) ([]domain.Parent, error)
}

// ReferenceHandler serves the lookup tables that the registration forms are
// populated from.
type ReferenceHandler struct {
	svc ReferenceService
}

func NewReferenceHandler(svc ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		svc: svc,
	}
}

// HandleCreateGrade godoc
//
//	@Summary  Adds a grade
//	@Tags     reference
//	@Accept   json
//	@Produce  json
//	@Param    request body request.NameRequest true "grade name"
//	@Success  201 {object} domain.Grade
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /grades [post]
func (h *ReferenceHandler) HandleCreateGrade(ctx *gin.Context) {
	req, ok := bindNameRequest(ctx)
	if !ok {
		return
	}

	created, err := h.svc.CreateGrade(ctx.Request.Context(), domain.Grade{Name: req.Name})
	if err != nil {
		renderReferenceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListGrades godoc
//
//	@Summary  Lists grades
//	@Tags     reference
//	@Produce  json
//	@Success  200 {array} domain.Grade
//	@Failure  500 {object} response.Err
//	@Router   /grades [get]
func (h *ReferenceHandler) HandleListGrades(ctx *gin.Context) {
	grades, err := h.svc.ListGrades(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, grades)
}

// HandleCreateChurch godoc
//
//	@Summary  Adds a church
//	@Tags     reference
//	@Accept   json
//	@Produce  json
//	@Param    request body request.NameRequest true "church name"
//	@Success  201 {object} domain.Church
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /churches [post]
func (h *ReferenceHandler) HandleCreateChurch(ctx *gin.Context) {
	req, ok := bindNameRequest(ctx)
	if !ok {
		return
	}

	created, err := h.svc.CreateChurch(ctx.Request.Context(), domain.Church{Name: req.Name})
	if err != nil {
		renderReferenceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListChurches godoc
//
//	@Summary  Lists churches
//	@Tags     reference
//	@Produce  json
//	@Success  200 {array} domain.Church
//	@Failure  500 {object} response.Err
//	@Router   /churches [get]
func (h *ReferenceHandler) HandleListChurches(ctx *gin.Context) {
	churches, err := h.svc.ListChurches(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, churches)
}

// HandleCreateAttendanceType godoc
//
//	@Summary  Adds an attendance type
//	@Tags     reference
//	@Accept   json
//	@Produce  json
//	@Param    request body request.NameRequest true "attendance type name"
//	@Success  201 {object} domain.AttendanceType
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /attendance-types [post]
func (h *ReferenceHandler) HandleCreateAttendanceType(ctx *gin.Context) {
	req, ok := bindNameRequest(ctx)
	if !ok {
		return
	}

	created, err := h.svc.CreateAttendanceType(ctx.Request.Context(), domain.AttendanceType{Name: req.Name})
	if err != nil {
		renderReferenceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListAttendanceTypes godoc
//
//	@Summary  Lists attendance types
//	@Tags     reference
//	@Produce  json
//	@Success  200 {array} domain.AttendanceType
//	@Failure  500 {object} response.Err
//	@Router   /attendance-types [get]
func (h *ReferenceHandler) HandleListAttendanceTypes(ctx *gin.Context) {
	attendanceTypes, err := h.svc.ListAttendanceTypes(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, attendanceTypes)
}

// HandleCreateSession godoc
//
//	@Summary  Adds an event session
//	@Tags     reference
//	@Accept   json
//	@Produce  json
//	@Param    request body request.CreateSessionRequest true "session details"
//	@Success  201 {object} domain.Session
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /sessions [post]
func (h *ReferenceHandler) HandleCreateSession(ctx *gin.Context) {
	var req request.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSession(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListSessions godoc
//
//	@Summary  Lists event sessions
//	@Tags     reference
//	@Produce  json
//	@Success  200 {array} domain.Session
//	@Failure  500 {object} response.Err
//	@Router   /sessions [get]
func (h *ReferenceHandler) HandleListSessions(ctx *gin.Context) {
	sessions, err := h.svc.ListSessions(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

// HandleCreatePickupPerson godoc
//
//	@Summary  Adds an authorized pickup person
//	@Tags     reference
//	@Accept   json
//	@Produce  json
//	@Param    request body request.CreatePickupPersonRequest true "pickup person details"
//	@Success  201 {object} domain.PickupPerson
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /pickup-persons [post]
func (h *ReferenceHandler) HandleCreatePickupPerson(ctx *gin.Context) {
	var req request.CreatePickupPersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreatePickupPerson(ctx.Request.Context(), domain.PickupPerson{
		Name:      req.Name,
		ContactNo: req.ContactNo,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListPickupPersons godoc
//
//	@Summary  Lists authorized pickup persons
//	@Tags     reference
//	@Produce  json
//	@Success  200 {array} domain.PickupPerson
//	@Failure  500 {object} response.Err
//	@Router   /pickup-persons [get]
func (h *ReferenceHandler) HandleListPickupPersons(ctx *gin.Context) {
	persons, err := h.svc.ListPickupPersons(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, persons)
}

// HandleCreateParent godoc
//
//	@Summary  Adds a parent or guardian record
//	@Tags     reference
//	@Accept   json
//	@Produce  json
//	@Param    request body request.CreateParentRequest true "parent details"
//	@Success  201 {object} domain.Parent
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /parents [post]
func (h *ReferenceHandler) HandleCreateParent(ctx *gin.Context) {
	var req request.CreateParentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateParent(ctx.Request.Context(), domain.Parent{
		FullName:           req.FullName,
		PrimaryContactNo:   req.PrimaryContactNo,
		AlternateContactNo: req.AlternateContactNo,
		Email:              req.Email,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListParents godoc
//
//	@Summary  Lists parent and guardian records
//	@Tags     reference
//	@Produce  json
//	@Success  200 {array} domain.Parent
//	@Failure  500 {object} response.Err
//	@Router   /parents [get]
func (h *ReferenceHandler) HandleListParents(ctx *gin.Context) {
	parents, err := h.svc.ListParents(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, parents)
}

func bindNameRequest(ctx *gin.Context) (request.NameRequest, bool) {
	var req request.NameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return req, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return req, false
	}

	return req, true
}

func renderReferenceErr(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrReferenceNameExists) {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrReferenceNameExists))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
