package controllers

import (
	"net/http"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskRequest struct {
	Title          string     `json:"title" binding:"required"`
	ProjectID      int        `json:"project_id" binding:"required"`
	AssignedTo     *int       `json:"assigned_to"`
	Description    *string    `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
}

// validateTaskRelations checks that the task's project and optional assignee
// belong to the workspace.
func validateTaskRelations(c *gin.Context, projectID int, assignedTo *int) string {
	var project models.Project
	if err := config.DB.Where("project_id = ? AND user_id = ?", projectID, accountID(c)).
		First(&project).Error; err != nil {
		return "Project not found"
	}

	if assignedTo != nil {
		var employee models.Employee
		if err := config.DB.Where("employee_id = ? AND user_id = ?", *assignedTo, accountID(c)).
			First(&employee).Error; err != nil {
			return "Assigned employee not found"
		}
	}
	return ""
}

// GetTasks returns the workspace's tasks, filterable by project, status and
// assignee. Tasks are paged in SQL rather than in memory: the list can grow
// well past the other entities and carries two preloads per row.
func GetTasks(c *gin.Context) {
	filters := func(query *gorm.DB) *gorm.DB {
		query = query.Where("user_id = ?", accountID(c))
		if projectID := parseIntQuery(c, "project_id"); projectID != 0 {
			query = query.Where("project_id = ?", projectID)
		}
		if status := c.Query("status"); status != "" && status != "all" {
			query = query.Where("status = ?", status)
		}
		if assignedTo := parseIntQuery(c, "assigned_to"); assignedTo != 0 {
			query = query.Where("assigned_to = ?", assignedTo)
		}
		return query
	}

	var total int64
	if err := filters(config.DB.Model(&models.Task{})).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	page, limit, _ := paginationQuery(c, 20)
	offset, limit := services.PageBounds(page, limit, 20)

	var tasks []models.Task
	if err := filters(config.DB.Preload("Project").Preload("Assignee")).
		Order("due_date IS NULL, due_date ASC").
		Offset(offset).Limit(limit).
		Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       tasks,
		"pagination": paginationBlock(page, limit, total),
	})
}

// GetTask returns one task with its relations.
func GetTask(c *gin.Context) {
	var task models.Task
	if err := config.DB.Preload("Project").Preload("Assignee").
		Where("task_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    task,
	})
}

// CreateTask creates a task under a workspace project.
func CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = models.TaskStatusTodo
	}
	if req.Priority == "" {
		req.Priority = models.TaskPriorityMedium
	}
	if !models.ValidTaskStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task status"})
		return
	}
	if !models.ValidTaskPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task priority"})
		return
	}
	if msg := validateTaskRelations(c, req.ProjectID, req.AssignedTo); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	task := models.Task{
		UserID:         accountID(c),
		ProjectID:      req.ProjectID,
		AssignedTo:     req.AssignedTo,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		CreateAt:       &now,
		UpdateAt:       &now,
	}

	if err := config.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"data":    task,
	})
}

// UpdateTask updates a task in place.
func UpdateTask(c *gin.Context) {
	var task models.Task
	if err := config.DB.Where("task_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != "" && !models.ValidTaskStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task status"})
		return
	}
	if req.Priority != "" && !models.ValidTaskPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task priority"})
		return
	}
	if msg := validateTaskRelations(c, req.ProjectID, req.AssignedTo); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	task.Title = req.Title
	task.ProjectID = req.ProjectID
	task.AssignedTo = req.AssignedTo
	task.Description = req.Description
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.DueDate = req.DueDate
	task.EstimatedHours = req.EstimatedHours
	task.ActualHours = req.ActualHours
	task.UpdateAt = &now

	if err := config.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
		"data":    task,
	})
}

// DeleteTask hard-deletes a task after the ownership check.
func DeleteTask(c *gin.Context) {
	var task models.Task
	if err := config.DB.Where("task_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := config.DB.Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}
