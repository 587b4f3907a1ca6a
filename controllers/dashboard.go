package controllers

import (
	"net/http"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/services"
	"gestibud-api/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the workspace-wide counters shown on the home
// screen.
func GetDashboardStats(c *gin.Context) {
	account := accountID(c)

	var (
		totalProjects   int64
		activeProjects  int64
		totalEmployees  int64
		activeEmployees int64
		totalMaterials  int64
		lowStock        int64
		runningTimers   int64
		openTasks       int64
		totalExpenses   float64
	)

	config.DB.Model(&models.Project{}).Where("user_id = ?", account).Count(&totalProjects)
	config.DB.Model(&models.Project{}).Where("user_id = ? AND status = ?", account, models.ProjectStatusInProgress).Count(&activeProjects)
	config.DB.Model(&models.Employee{}).Where("user_id = ?", account).Count(&totalEmployees)
	config.DB.Model(&models.Employee{}).Where("user_id = ? AND is_active = ?", account, true).Count(&activeEmployees)
	config.DB.Model(&models.Material{}).Where("user_id = ?", account).Count(&totalMaterials)
	config.DB.Model(&models.Material{}).Where("user_id = ? AND stock_quantity <= min_stock_threshold", account).Count(&lowStock)
	config.DB.Model(&models.TimeEntry{}).Where("user_id = ? AND end_time IS NULL", account).Count(&runningTimers)
	config.DB.Model(&models.Task{}).Where("user_id = ? AND status <> ?", account, models.TaskStatusCompleted).Count(&openTasks)
	config.DB.Model(&models.Expense{}).Where("user_id = ?", account).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalExpenses)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_projects":         totalProjects,
			"active_projects":        activeProjects,
			"total_employees":        totalEmployees,
			"active_employees":       activeEmployees,
			"total_materials":        totalMaterials,
			"low_stock_materials":    lowStock,
			"running_time_entries":   runningTimers,
			"open_tasks":             openTasks,
			"total_expenses":         utils.Round2(totalExpenses),
			"total_expenses_display": utils.FormatAmount(totalExpenses, accountCurrency(c), accountLanguage(c)),
		},
	})
}

// GetTimeEntryStats aggregates time entries for the dashboard charts. Accepts
// the same filters as the list endpoint.
func GetTimeEntryStats(c *gin.Context) {
	var entries []models.TimeEntry
	if err := config.DB.Preload("Project").Preload("Employee").
		Where("user_id = ?", accountID(c)).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time entries"})
		return
	}

	filtered := services.FilterTimeEntries(entries, timeEntryFilterFromQuery(c))
	stats := services.ComputeTimeEntryStats(filtered, accountLanguage(c))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GetExpenseStats aggregates expenses for the dashboard charts. Accepts the
// same filters as the list endpoint.
func GetExpenseStats(c *gin.Context) {
	var expenses []models.Expense
	if err := config.DB.Preload("Project").
		Where("user_id = ?", accountID(c)).
		Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	filtered := services.FilterExpenses(expenses, expenseFilterFromQuery(c))
	stats := services.ComputeExpenseStats(filtered, accountLanguage(c))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
