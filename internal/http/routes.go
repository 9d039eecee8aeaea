package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"task-match-service.com/task-match-service/internal/auth"
	middleware "task-match-service.com/task-match-service/internal/http/middlewares"
	"task-match-service.com/task-match-service/internal/http/validators"
)

func Register(
	e *echo.Echo,
	tasks *TaskHandler,
	users *UserHandler,
	properties *PropertyHandler,
	tokens *auth.TokenManager,
	rateLimitPerMinute int,
) {
	e.Validator = validators.New()
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/auth/register", users.Register)
	e.POST("/auth/login", users.Login)

	e.GET("/tasks", tasks.ListTasks)
	e.GET("/tasks/unassigned", tasks.ListUnassignedTasks)
	e.GET("/tasks/:id", tasks.GetTask)
	e.GET("/properties", properties.ListProperties)

	authed := e.Group("", middleware.Authenticate(tokens))

	authed.GET("/users/me", users.Me)

	authed.POST("/tasks", tasks.CreateTask)
	authed.POST("/tasks/:id/assign", tasks.AssignTask)
	authed.POST("/tasks/:id/unassign", tasks.UnassignTask)
	authed.POST("/tasks/:id/submit", tasks.SubmitTask)
	authed.POST("/tasks/:id/approve", tasks.ApproveTask)
	authed.POST("/tasks/:id/deactivate", tasks.DeactivateTask)
	authed.GET("/recommendations", tasks.Recommendations)

	authed.POST("/properties", properties.CreateProperty)
	authed.DELETE("/properties/:id", properties.DeleteProperty)

	authed.POST("/tasks/:id/properties", properties.AttachTaskProperty)
	authed.DELETE("/tasks/:id/properties/:propertyId", properties.DetachTaskProperty)

	authed.PUT("/users/me/properties", properties.SetUserProperty)
	authed.DELETE("/users/me/properties/:propertyId", properties.DeleteUserProperty)

	authed.PUT("/tasks/:id/reaction", properties.SetReaction)
	authed.DELETE("/tasks/:id/reaction", properties.DeleteReaction)
}
