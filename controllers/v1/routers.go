package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"interview-tracker-backend/middleware"
)

// InitRouters mounts every v1 API group on apiV1.
func InitRouters(apiV1 *fiber.App) {
	InitHealthApiRouters(apiV1)
	InitAuthApiRouters(apiV1)

	usersApi := fiber.New()
	apiV1.Mount("/users", usersApi)
	usersApi.Use(middleware.AuthorizationRequired())
	InitUserApiRouters(usersApi)

	interviewsApi := fiber.New()
	apiV1.Mount("/interviews", interviewsApi)
	interviewsApi.Use(middleware.AuthorizationRequired())
	InitInterviewApiRouters(interviewsApi)
	InitInterviewRecordApiRouters(interviewsApi)

	adminApi := fiber.New()
	apiV1.Mount("/admin", adminApi)
	adminApi.Use(middleware.AuthorizationRequired())
	adminApi.Use(middleware.AdminRoleRequired())
	InitAdminApiRouters(adminApi)
}
