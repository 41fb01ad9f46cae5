package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lic-events/vbs-api/internal/api/handler/v1/response"
	"github.com/lic-events/vbs-api/internal/pkg/jwthelper"
)

// UserIDKey is the gin context key under which the authenticated user's ID is
// stored by VerifyJWT.
const UserIDKey = "user_id"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing or malformed authorization header"))
			return
		}

		claims, err := jwthelper.ParseToken(parts[1], a.signingKey)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid or expired token"))
			return
		}

		ctx.Set(UserIDKey, claims.UserID)
		ctx.Next()
	}
}
