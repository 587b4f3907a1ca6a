package routes

import (
	"gestibud-api/controllers"
	"gestibud-api/middleware"
	"gestibud-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)
			public.POST("/invitations/accept", controllers.AcceptInvitation)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Gestibud API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Workspace preferences
			protected.GET("/preferences", controllers.GetPreferences)
			protected.PUT("/preferences", controllers.UpdatePreferences)

			// Projects
			projects := protected.Group("/projects")
			{
				projects.GET("", controllers.GetProjects)
				projects.GET("/:id", controllers.GetProject)
				projects.POST("", controllers.CreateProject)
				projects.PUT("/:id", controllers.UpdateProject)
				projects.DELETE("/:id", controllers.DeleteProject)
			}

			// Employees
			employees := protected.Group("/employees")
			{
				employees.GET("", controllers.GetEmployees)
				employees.GET("/:id", controllers.GetEmployee)
				employees.POST("", controllers.CreateEmployee)
				employees.PUT("/:id", controllers.UpdateEmployee)
				employees.DELETE("/:id", controllers.DeleteEmployee)
				employees.POST("/:id/avatar", controllers.UploadEmployeeAvatar)
			}

			// Materials
			materials := protected.Group("/materials")
			{
				materials.GET("", controllers.GetMaterials)
				materials.GET("/low-stock", controllers.GetLowStockMaterials)
				materials.GET("/:id", controllers.GetMaterial)
				materials.POST("", controllers.CreateMaterial)
				materials.PUT("/:id", controllers.UpdateMaterial)
				materials.DELETE("/:id", controllers.DeleteMaterial)
			}

			// Tasks
			tasks := protected.Group("/tasks")
			{
				tasks.GET("", controllers.GetTasks)
				tasks.GET("/:id", controllers.GetTask)
				tasks.POST("", controllers.CreateTask)
				tasks.PUT("/:id", controllers.UpdateTask)
				tasks.DELETE("/:id", controllers.DeleteTask)
			}

			// Time entries
			timeEntries := protected.Group("/time-entries")
			{
				timeEntries.GET("", controllers.GetTimeEntries)
				timeEntries.GET("/:id", controllers.GetTimeEntry)
				timeEntries.POST("", controllers.CreateTimeEntry)
				timeEntries.POST("/:id/stop", controllers.StopTimeEntry)
				timeEntries.PUT("/:id", controllers.UpdateTimeEntry)
				timeEntries.DELETE("/:id", controllers.DeleteTimeEntry)
			}

			// Expenses
			expenses := protected.Group("/expenses")
			{
				expenses.GET("", controllers.GetExpenses)
				expenses.GET("/:id", controllers.GetExpense)
				expenses.POST("", controllers.CreateExpense)
				expenses.PUT("/:id", controllers.UpdateExpense)
				expenses.DELETE("/:id", controllers.DeleteExpense)
				expenses.POST("/:id/receipt", controllers.UploadReceipt)
				expenses.GET("/:id/receipt", controllers.DownloadReceipt)
			}

			// Collaborators & invitations (only admins can manage them)
			protected.GET("/collaborators", controllers.GetCollaborators)
			invitations := protected.Group("/invitations")
			{
				invitations.GET("", middleware.RequireRole(models.RoleAdmin), controllers.GetInvitations)
				invitations.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateInvitation)
				invitations.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteInvitation)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
				dashboard.GET("/time-stats", controllers.GetTimeEntryStats)
				dashboard.GET("/expense-stats", controllers.GetExpenseStats)
			}

			// Exports
			export := protected.Group("/export")
			{
				export.GET("/employees/csv", controllers.ExportEmployeesCSV)
				export.GET("/employees/report", controllers.ExportEmployeesReport)
				export.GET("/materials/csv", controllers.ExportMaterialsCSV)
				export.GET("/materials/report", controllers.ExportMaterialsReport)
				export.GET("/expenses/csv", controllers.ExportExpensesCSV)
				export.GET("/expenses/report", controllers.ExportExpensesReport)
				export.GET("/time-entries/csv", controllers.ExportTimeEntriesCSV)
				export.GET("/time-entries/report", controllers.ExportTimeEntriesReport)
			}
		}
	}
}
