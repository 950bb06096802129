// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finanzas-app/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	accountController    *controller.AccountController
	obligationController *controller.ObligationController
	alertController      *controller.AlertController
	movementController   *controller.MovementController
	dashboardController  *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	obligationController *controller.ObligationController,
	alertController *controller.AlertController,
	movementController *controller.MovementController,
	dashboardController *controller.DashboardController,
) *Router {
	return &Router{
		healthController:     healthController,
		accountController:    accountController,
		obligationController: obligationController,
		alertController:      alertController,
		movementController:   movementController,
		dashboardController:  dashboardController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.GET("/:id/movements", r.accountController.GetMovements)
		}

		obligations := v1.Group("/obligations")
		{
			obligations.GET("", r.obligationController.List)
			obligations.POST("", r.obligationController.Create)
			obligations.DELETE("/:id", r.obligationController.Delete)
			obligations.GET("/:id/history", r.obligationController.GetHistory)
			obligations.GET("/:id/settled", r.obligationController.IsSettled)
			obligations.POST("/:id/settlements", r.obligationController.Settle)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("", r.alertController.List)
			alerts.POST("/digest", r.alertController.SendDigest)
		}

		movements := v1.Group("/movements")
		{
			movements.GET("", r.movementController.List)
			movements.POST("", r.movementController.Register)
			movements.DELETE("/:id", r.movementController.Delete)
			movements.DELETE("", r.movementController.Clear)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.GetSummary)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
