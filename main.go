package main

import (
	"fmt"
	"log"
	"os"

	"fieldpro-backend/config"
	"fieldpro-backend/controllers"
	"fieldpro-backend/models"
	"fieldpro-backend/routes"
	"fieldpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.CatalogService{},
		&models.CatalogMaterial{},
		&models.Invoice{},
		&models.InvoiceService{},
		&models.InvoiceMaterial{},
		&models.PaymentReminderLog{},
	)

	if err := models.SeedCatalog(config.DB); err != nil {
		log.Printf("Failed to seed catalog: %v", err)
	}
}

func main() {
	controllers.Invoices = services.NewInvoiceService(config.DB, services.NewSimulatedGenerator())

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
