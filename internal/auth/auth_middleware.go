package auth

import (
	"strings"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"
	"go-ems/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by Middleware for downstream handlers.
const (
	CtxUserIDKey = "user_id"
	CtxUserKey   = "current_user"
)

// Middleware is the auth gate: it extracts a bearer token, verifies it, and
// resolves the identity from the store before letting the request through.
//
// Missing header, malformed header, failed verification, and a subject whose
// identity no longer exists all produce the exact same 401 body. That
// uniformity is deliberate; do not give the cases distinct messages.
func Middleware(tokens token.Service, repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		subjectID, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		id, err := uuid.Parse(subjectID)
		if err != nil {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		// Tokens outlive identities: re-check the store so a deleted user
		// cannot keep using an otherwise valid token.
		user, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, user.ID.String())
		c.Set(CtxUserKey, user)

		ctx := contextutil.WithUserID(c.Request.Context(), user.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
