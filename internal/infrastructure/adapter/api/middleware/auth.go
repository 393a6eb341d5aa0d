package middleware

import (
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ActorHeader carries the chat platform id of the user driving the request.
// It is set by the trusted chat front-end.
const ActorHeader = "X-Actor-ID"

const actorIDKey = "actorID"

// ActorID parses the actor header when present. A malformed value is rejected.
func ActorID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ActorHeader)
		if raw == "" {
			c.Next()
			return
		}

		actorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || actorID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrInvalidUserID),
				Message: "Invalid " + ActorHeader + " header",
			})
			return
		}

		c.Set(actorIDKey, actorID)
		c.Next()
	}
}

// ActorIDFromContext returns the actor parsed by ActorID
func ActorIDFromContext(c *gin.Context) (uint64, bool) {
	value, ok := c.Get(actorIDKey)
	if !ok {
		return 0, false
	}
	actorID, ok := value.(uint64)
	return actorID, ok
}

// RequirePrivileged rejects requests whose actor is not an administrator
func RequirePrivileged(authorizer coreport.Authorizer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := ActorIDFromContext(c)
		if !ok || !authorizer.IsPrivileged(c.Request.Context(), actorID) {
			logger.Warn("Privileged route denied", map[string]any{
				"actor_id": actorID,
				"path":     c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrForbidden),
				Message: "Administrator privileges required",
			})
			return
		}

		c.Next()
	}
}
