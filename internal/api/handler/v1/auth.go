package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lic-events/vbs-api/internal/api/handler/v1/request"
	"github.com/lic-events/vbs-api/internal/api/handler/v1/response"
	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/pkg/jwthelper"
	"github.com/lic-events/vbs-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	svc        AuthService
	signingKey []byte
}

func NewAuthHandler(svc AuthService, signingKey string) *AuthHandler {
	return &AuthHandler{
		svc:        svc,
		signingKey: []byte(signingKey),
	}
}

// HandleSignup godoc
//
//	@Summary  Registers a staff account
//	@Tags     auth
//	@Accept   json
//	@Produce  json
//	@Param    request body request.SignupRequest true "signup request"
//	@Success  201 {object} domain.User
//	@Failure  400 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsStaff:  true,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
//
//	@Summary  Logs a user in and returns a JWT
//	@Tags     auth
//	@Accept   json
//	@Produce  json
//	@Param    request body request.LoginRequest true "login request"
//	@Success  200 {object} response.LoginResponse
//	@Failure  400 {object} response.Err
//	@Failure  401 {object} response.Err
//	@Failure  500 {object} response.Err
//	@Router   /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("wrong email or password")))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.signingKey, user.ID, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}
