package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"staff-roster.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	skillHandler        *handlers.SkillHandler
	employeeHandler     *handlers.EmployeeHandler
	availabilityHandler *handlers.AvailabilityHandler
	idempotency         gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	if d.idempotency != nil {
		api.Use(d.idempotency)
	}
	{
		skills := api.Group("/skills")
		{
			skills.GET("/", d.skillHandler.ListSkills)
			skills.POST("/", d.skillHandler.CreateSkill)
			skills.GET("/:id/", d.skillHandler.GetSkill)
			skills.PUT("/:id/", d.skillHandler.UpdateSkill)
			skills.PATCH("/:id/", d.skillHandler.PatchSkill)
			skills.DELETE("/:id/", d.skillHandler.DeleteSkill)
		}

		employees := api.Group("/employees")
		{
			employees.GET("/", d.employeeHandler.ListEmployees)
			employees.POST("/", d.employeeHandler.CreateEmployee)
			employees.GET("/:id/", d.employeeHandler.GetEmployee)
			employees.PUT("/:id/", d.employeeHandler.UpdateEmployee)
			employees.PATCH("/:id/", d.employeeHandler.PatchEmployee)
			employees.DELETE("/:id/", d.employeeHandler.DeleteEmployee)
			employees.GET("/:id/availability/", d.employeeHandler.ListAvailability)
			employees.POST("/:id/availability/", d.employeeHandler.CreateAvailability)
		}

		availability := api.Group("/availability")
		{
			availability.GET("/", d.availabilityHandler.ListAvailability)
			availability.POST("/", d.availabilityHandler.CreateAvailability)
			availability.GET("/:id/", d.availabilityHandler.GetAvailability)
			availability.PUT("/:id/", d.availabilityHandler.UpdateAvailability)
			availability.PATCH("/:id/", d.availabilityHandler.PatchAvailability)
			availability.DELETE("/:id/", d.availabilityHandler.DeleteAvailability)
		}
	}
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Health)
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Idempotency-Key, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, X-Idempotency-Hit")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
