package controllers

import (
	"net/http"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/services"

	"github.com/gin-gonic/gin"
)

type TimeEntryRequest struct {
	ProjectID   int        `json:"project_id" binding:"required"`
	EmployeeID  int        `json:"employee_id" binding:"required"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
	Description *string    `json:"description"`
}

// GetTimeEntries lists the workspace's time entries through the shared filter
// engine and paginates the result in memory, so list and export views agree.
func GetTimeEntries(c *gin.Context) {
	var entries []models.TimeEntry
	if err := config.DB.Preload("Project").Preload("Employee").
		Where("user_id = ?", accountID(c)).
		Order("start_time DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time entries"})
		return
	}

	filtered := services.FilterTimeEntries(entries, timeEntryFilterFromQuery(c))

	page, limit, _ := paginationQuery(c, 20)
	paginator := services.NewPaginator(filtered, limit)
	paginator.GoToPage(page)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       paginator.PageItems(),
		"pagination": paginationBlock(paginator.CurrentPage(), limit, int64(len(filtered))),
	})
}

// GetTimeEntry returns one time entry.
func GetTimeEntry(c *gin.Context) {
	var entry models.TimeEntry
	if err := config.DB.Preload("Project").Preload("Employee").
		Where("time_entry_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entry,
	})
}

// validateTimeEntryRelations checks that the entry's project and employee
// belong to the workspace. Returns an error message, empty when valid.
func validateTimeEntryRelations(c *gin.Context, projectID, employeeID int) string {
	var project models.Project
	if err := config.DB.Where("project_id = ? AND user_id = ?", projectID, accountID(c)).
		First(&project).Error; err != nil {
		return "Project not found"
	}
	var employee models.Employee
	if err := config.DB.Where("employee_id = ? AND user_id = ?", employeeID, accountID(c)).
		First(&employee).Error; err != nil {
		return "Employee not found"
	}
	return ""
}

// CreateTimeEntry starts (or records) a time entry. When end_time is present
// the hours are computed immediately.
func CreateTimeEntry(c *gin.Context) {
	var req TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := validateTimeEntryRelations(c, req.ProjectID, req.EmployeeID); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	entry := models.TimeEntry{
		UserID:      accountID(c),
		ProjectID:   req.ProjectID,
		EmployeeID:  req.EmployeeID,
		StartTime:   req.StartTime,
		Description: req.Description,
		CreateAt:    &now,
		UpdateAt:    &now,
	}
	if req.EndTime != nil {
		entry.Stop(*req.EndTime)
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create time entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Time entry created successfully",
		"data":    entry,
	})
}

// StopTimeEntry stops a running timer and computes hours_worked.
func StopTimeEntry(c *gin.Context) {
	var entry models.TimeEntry
	if err := config.DB.Where("time_entry_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
		return
	}

	if entry.IsCompleted() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Time entry is already stopped"})
		return
	}

	now := time.Now()
	entry.Stop(now)
	entry.UpdateAt = &now

	if err := config.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stop time entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Time entry stopped successfully",
		"data":    entry,
	})
}

// UpdateTimeEntry updates a time entry in place, recomputing hours when the
// window changes.
func UpdateTimeEntry(c *gin.Context) {
	var entry models.TimeEntry
	if err := config.DB.Where("time_entry_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
		return
	}

	var req TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := validateTimeEntryRelations(c, req.ProjectID, req.EmployeeID); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	entry.ProjectID = req.ProjectID
	entry.EmployeeID = req.EmployeeID
	entry.StartTime = req.StartTime
	entry.Description = req.Description
	entry.EndTime = nil
	entry.HoursWorked = nil
	if req.EndTime != nil {
		entry.Stop(*req.EndTime)
	}
	entry.UpdateAt = &now

	if err := config.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update time entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Time entry updated successfully",
		"data":    entry,
	})
}

// DeleteTimeEntry hard-deletes a time entry after the ownership check.
func DeleteTimeEntry(c *gin.Context) {
	var entry models.TimeEntry
	if err := config.DB.Where("time_entry_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
		return
	}

	if err := config.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete time entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Time entry deleted successfully",
	})
}
