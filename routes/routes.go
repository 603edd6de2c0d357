package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spacare-backend/config"
	"spacare-backend/controllers"
	"spacare-backend/storage"
)

func SetupRouter(store *storage.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	customerController := controllers.NewCustomerController(store)
	packageController := controllers.NewPackageController(store)
	saleController := controllers.NewSaleController(store)
	sessionController := controllers.NewSessionController(store)
	dashboardController := controllers.NewDashboardController(store)
	reportController := controllers.NewReportController(store)
	settingsController := controllers.NewSettingsController(store)
	demoController := controllers.NewDemoController(store)
	bookingController := controllers.NewBookingController(store)

	// Public marketing-site route
	r.POST("/booking", bookingController.CreateBooking)

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Catalog routes
		packages := api.Group("/packages")
		{
			packages.GET("", packageController.GetPackages)
			packages.GET("/:id", packageController.GetPackage)
		}

		// Sales routes
		sales := api.Group("/sales")
		{
			sales.POST("", saleController.CreateSale)
			sales.GET("", saleController.GetSales)
		}

		// Session routes
		sessions := api.Group("/sessions")
		{
			sessions.POST("", sessionController.CreateSession)
			sessions.GET("", sessionController.GetSessions)
			sessions.PATCH("/:id/status", sessionController.UpdateSessionStatus)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Reports routes
		api.GET("/reports", reportController.GetReportAnalytics)

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", settingsController.GetSettings)
			settings.PUT("", settingsController.UpdateSettings)
		}
		api.GET("/reminders/logs", settingsController.GetReminderLogs)

		// Demo data routes
		demo := api.Group("/demo")
		{
			demo.POST("/generate", demoController.GenerateDemoData)
			demo.POST("/clear", demoController.ClearDemoData)
		}
	}

	return r
}
