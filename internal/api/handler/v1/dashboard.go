package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lic-events/vbs-api/internal/api/handler/v1/response"
	"github.com/lic-events/vbs-api/internal/api/middleware"
	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/service"
)

type DashboardService interface {
	GetDashboardData(ctx context.Context) (domain.DashboardData, error)
}

type DashboardUserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type DashboardHandler struct {
	svc   DashboardService
	users DashboardUserService
}

func NewDashboardHandler(svc DashboardService, users DashboardUserService) *DashboardHandler {
	return &DashboardHandler{
		svc:   svc,
		users: users,
	}
}

// HandleGetDashboard godoc
//
//	@Summary  Returns registration overview counts and grade distributions
//	@Tags     dashboard
//	@Produce  json
//	@Success  200 {object} domain.DashboardData
//	@Failure  401 {object} response.Err
//	@Failure  403 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Security BearerAuth
//	@Router   /dashboard [get]
func (h *DashboardHandler) HandleGetDashboard(ctx *gin.Context) {
	userID := ctx.GetUint(middleware.UserIDKey)

	user, err := h.users.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrUnauthorized("account no longer exists"))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !user.IsStaff {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("staff access required")))
		return
	}

	data, err := h.svc.GetDashboardData(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, data)
}
