package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrNotFound(what, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v %v not found", what, key, value),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized(msg string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        msg,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

// ErrInternalServerError logs the wrapped cause and hides it from the caller.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
	}
}
