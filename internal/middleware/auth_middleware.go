package middleware

import (
	"context"
	"strconv"
	"strings"

	"go-salary/internal/domain"
	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextKeyAccessToken = "access_token"
	ContextKeyUserID      = "user_id"
	ContextKeyRole        = "role"
)

// IdentityResolver turns a bearer token into the caller it belongs to.
// Implementations must read the role from storage, not from the token.
type IdentityResolver interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

func AuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, "Token not found", nil)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		identity, err := resolver.Authenticate(ctx, tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			contextutil.GetLogger(ctx, zap.L()).Debug("authentication rejected",
				zap.String("path", c.FullPath()),
				zap.String("code", httpErr.Code),
			)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		uid := strconv.FormatUint(uint64(identity.UserID), 10)
		c.Set(ContextKeyAccessToken, tokenString)
		c.Set(ContextKeyUserID, uid)
		c.Set(ContextKeyRole, identity.Role)

		ctx = contextutil.WithIdentity(ctx, identity)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", uid)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin rejects non-administrators before the handler reads the body.
// Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := contextutil.GetIdentity(c.Request.Context())
		if !domain.IsAdministrator(identity) {
			errObj := apperror.ErrForbidden
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
