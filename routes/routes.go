package routes

import (
	"os"
	"strings"

	"fieldpro-backend/config"
	"fieldpro-backend/controllers"
	"fieldpro-backend/models"
	"fieldpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)

			clients.POST("/:id/invoices", controllers.CreateInvoice)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.DELETE("/:id", controllers.DeleteInvoice)

			// Lifecycle transitions
			invoices.POST("/:id/pdf", controllers.GenerateInvoicePDF)
			invoices.POST("/:id/pay", controllers.PayInvoice)
			invoices.POST("/:id/cancel", controllers.CancelInvoice)
			invoices.POST("/:id/complete", controllers.CompleteInvoice)
		}

		// Catalog routes: reads for everyone, writes for managers
		catalog := api.Group("/catalog")
		{
			catalog.GET("/services", controllers.GetCatalogServices)
			catalog.GET("/materials", controllers.GetCatalogMaterials)

			manage := catalog.Group("", utils.RequireRole(models.RoleManager))
			{
				manage.POST("/services", controllers.CreateCatalogService)
				manage.PUT("/services/:id", controllers.UpdateCatalogService)
				manage.DELETE("/services/:id", controllers.DeleteCatalogService)
				manage.POST("/materials", controllers.CreateCatalogMaterial)
				manage.PUT("/materials/:id", controllers.UpdateCatalogMaterial)
				manage.DELETE("/materials/:id", controllers.DeleteCatalogMaterial)
			}
		}

		// Manager-only surface
		manager := api.Group("", utils.RequireRole(models.RoleManager))
		{
			reportController := controllers.ReportController{}
			manager.GET("/reports", reportController.GetReportAnalytics)
			manager.GET("/dashboard", controllers.GetDashboardOverview)

			executors := manager.Group("/executors")
			{
				executors.GET("", controllers.GetExecutors)
				executors.POST("", controllers.AddExecutor)
				executors.PUT("/:id", controllers.UpdateExecutor)
				executors.DELETE("/:id", controllers.DeleteExecutor)
			}
		}
	}

	return r
}
