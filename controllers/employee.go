package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeRequest struct {
	FirstName  string     `json:"first_name" binding:"required"`
	LastName   string     `json:"last_name" binding:"required"`
	Position   *string    `json:"position"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	HourlyRate float64    `json:"hourly_rate"`
	HireDate   *time.Time `json:"hire_date"`
	IsActive   *bool      `json:"is_active"`
}

// GetEmployees returns the workspace's employees.
func GetEmployees(c *gin.Context) {
	query := config.DB.Where("user_id = ?", accountID(c))
	if c.Query("active_only") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var employees []models.Employee
	if err := query.Order("last_name ASC, first_name ASC").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employees,
		"count":   len(employees),
	})
}

// GetEmployee returns one employee.
func GetEmployee(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.Where("employee_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employee,
	})
}

// CreateEmployee creates an employee record.
func CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.HourlyRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hourly rate cannot be negative"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	employee := models.Employee{
		UserID:     accountID(c),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
		HourlyRate: req.HourlyRate,
		HireDate:   req.HireDate,
		IsActive:   isActive,
		CreateAt:   &now,
		UpdateAt:   &now,
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Employee created successfully",
		"data":    employee,
	})
}

// UpdateEmployee updates an employee in place.
func UpdateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.Where("employee_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.HourlyRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hourly rate cannot be negative"})
		return
	}

	now := time.Now()
	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Position = req.Position
	employee.Email = req.Email
	employee.Phone = req.Phone
	employee.HourlyRate = req.HourlyRate
	employee.HireDate = req.HireDate
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	employee.UpdateAt = &now

	if err := config.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee updated successfully",
		"data":    employee,
	})
}

// DeleteEmployee hard-deletes an employee after the ownership check.
func DeleteEmployee(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.Where("employee_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	if err := config.DB.Delete(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee deleted successfully",
	})
}

// UploadEmployeeAvatar stores an avatar image for an employee.
func UploadEmployeeAvatar(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.Where("employee_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	maxSize := int64(5 * 1024 * 1024) // 5MB
	if file.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 5MB limit"})
		return
	}

	allowedTypes := map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".webp": true,
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedTypes[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	avatarDir := filepath.Join(uploadPath, "avatars")
	if err := os.MkdirAll(avatarDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	storedName := uuid.NewString() + ext
	fullPath := filepath.Join(avatarDir, storedName)
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	now := time.Now()
	fileUpload := models.FileUpload{
		OriginalName: file.Filename,
		StoredPath:   fullPath,
		FileSize:     file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		UploadedBy:   currentUserID(c),
		UploadedAt:   now,
		CreateAt:     now,
		UpdateAt:     now,
	}
	if err := config.DB.Create(&fileUpload).Error; err != nil {
		os.Remove(fullPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file info"})
		return
	}

	avatarURL := "/uploads/avatars/" + storedName
	employee.AvatarURL = &avatarURL
	employee.UpdateAt = &now
	if err := config.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Avatar uploaded successfully",
		"data":    employee,
	})
}
