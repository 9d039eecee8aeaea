package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-match-service.com/task-match-service/internal/auth"
	model "task-match-service.com/task-match-service/internal/models"
)

const actorContextKey = "actor"

// Authenticate resolves the Bearer token into a verified actor and
// stores it on the request context. Handlers behind it can assume the
// actor exists.
func Authenticate(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			actor, err := tokens.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func ActorFrom(c echo.Context) (model.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(model.Actor)
	return actor, ok
}
