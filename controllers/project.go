package controllers

import (
	"net/http"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"

	"github.com/gin-gonic/gin"
)

type ProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Budget      *float64   `json:"budget"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Address     *string    `json:"address"`
	ClientName  *string    `json:"client_name"`
	ClientEmail *string    `json:"client_email"`
	ClientPhone *string    `json:"client_phone"`
}

// GetProjects returns the workspace's projects, optionally filtered by status.
func GetProjects(c *gin.Context) {
	status := c.Query("status")

	query := config.DB.Where("user_id = ?", accountID(c))
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var projects []models.Project
	if err := query.Order("create_at DESC").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    projects,
		"count":   len(projects),
	})
}

// GetProject returns one project with its tasks.
func GetProject(c *gin.Context) {
	var project models.Project
	if err := config.DB.Preload("Tasks").
		Where("project_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    project,
	})
}

// CreateProject creates a project in the workspace.
func CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = models.ProjectStatusPlanning
	}
	if !models.ValidProjectStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project status"})
		return
	}

	now := time.Now()
	project := models.Project{
		UserID:      accountID(c),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Address:     req.Address,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"data":    project,
	})
}

// UpdateProject updates a project in place.
func UpdateProject(c *gin.Context) {
	var project models.Project
	if err := config.DB.Where("project_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != "" && !models.ValidProjectStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project status"})
		return
	}

	now := time.Now()
	project.Name = req.Name
	project.Description = req.Description
	if req.Status != "" {
		project.Status = req.Status
	}
	project.Budget = req.Budget
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	project.Address = req.Address
	project.ClientName = req.ClientName
	project.ClientEmail = req.ClientEmail
	project.ClientPhone = req.ClientPhone
	project.UpdateAt = &now

	if err := config.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"data":    project,
	})
}

// DeleteProject hard-deletes a project after the ownership check.
func DeleteProject(c *gin.Context) {
	var project models.Project
	if err := config.DB.Where("project_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if err := config.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully",
	})
}
