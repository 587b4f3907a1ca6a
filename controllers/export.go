package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/services"

	"github.com/gin-gonic/gin"
)

func serveCSV(c *gin.Context, entity, content string) {
	filename := services.CSVFilename(entity, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

func serveReport(c *gin.Context, data services.ReportData) {
	html, err := services.RenderReport(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportEmployeesCSV writes the employee list as a CSV attachment.
func ExportEmployeesCSV(c *gin.Context) {
	var employees []models.Employee
	if err := config.DB.Where("user_id = ?", accountID(c)).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}
	serveCSV(c, "employes", services.EmployeesToCSV(employees))
}

// ExportEmployeesReport serves the printable employee report.
func ExportEmployeesReport(c *gin.Context) {
	var employees []models.Employee
	if err := config.DB.Where("user_id = ?", accountID(c)).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}
	serveReport(c, services.BuildEmployeeReport(employees, accountCurrency(c), accountLanguage(c), time.Now()))
}

// ExportMaterialsCSV writes the material list as a CSV attachment.
func ExportMaterialsCSV(c *gin.Context) {
	var materials []models.Material
	if err := config.DB.Where("user_id = ?", accountID(c)).
		Order("name ASC").
		Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}
	serveCSV(c, "materiaux", services.MaterialsToCSV(materials))
}

// ExportMaterialsReport serves the printable material report.
func ExportMaterialsReport(c *gin.Context) {
	var materials []models.Material
	if err := config.DB.Where("user_id = ?", accountID(c)).
		Order("name ASC").
		Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}
	serveReport(c, services.BuildMaterialReport(materials, accountCurrency(c), accountLanguage(c), time.Now()))
}

// ExportExpensesCSV writes the filtered expense list as a CSV attachment. It
// honours the same query filters as the list endpoint.
func ExportExpensesCSV(c *gin.Context) {
	expenses, ok := fetchFilteredExpenses(c)
	if !ok {
		return
	}
	serveCSV(c, "depenses", services.ExpensesToCSV(expenses))
}

// ExportExpensesReport serves the printable expense report over the same
// filtered rows as the CSV export.
func ExportExpensesReport(c *gin.Context) {
	expenses, ok := fetchFilteredExpenses(c)
	if !ok {
		return
	}
	serveReport(c, services.BuildExpenseReport(expenses, accountCurrency(c), accountLanguage(c), time.Now()))
}

// ExportTimeEntriesCSV writes the filtered time entries as a CSV attachment.
func ExportTimeEntriesCSV(c *gin.Context) {
	entries, ok := fetchFilteredTimeEntries(c)
	if !ok {
		return
	}
	serveCSV(c, "pointages", services.TimeEntriesToCSV(entries))
}

// ExportTimeEntriesReport serves the printable time entry report.
func ExportTimeEntriesReport(c *gin.Context) {
	entries, ok := fetchFilteredTimeEntries(c)
	if !ok {
		return
	}
	serveReport(c, services.BuildTimeEntryReport(entries, accountLanguage(c), time.Now()))
}

func fetchFilteredExpenses(c *gin.Context) ([]models.Expense, bool) {
	var expenses []models.Expense
	if err := config.DB.Preload("Project").
		Where("user_id = ?", accountID(c)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return nil, false
	}
	return services.FilterExpenses(expenses, expenseFilterFromQuery(c)), true
}

func fetchFilteredTimeEntries(c *gin.Context) ([]models.TimeEntry, bool) {
	var entries []models.TimeEntry
	if err := config.DB.Preload("Project").Preload("Employee").
		Where("user_id = ?", accountID(c)).
		Order("start_time DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time entries"})
		return nil, false
	}
	return services.FilterTimeEntries(entries, timeEntryFilterFromQuery(c)), true
}
