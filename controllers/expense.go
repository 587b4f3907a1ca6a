package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExpenseRequest struct {
	Description string    `json:"description" binding:"required"`
	Amount      *float64  `json:"amount" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	ProjectID   *int      `json:"project_id"`
}

// GetExpenses lists the workspace's expenses through the shared filter engine
// with in-memory pagination.
func GetExpenses(c *gin.Context) {
	var expenses []models.Expense
	if err := config.DB.Preload("Project").
		Where("user_id = ?", accountID(c)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	filtered := services.FilterExpenses(expenses, expenseFilterFromQuery(c))

	page, limit, _ := paginationQuery(c, 20)
	paginator := services.NewPaginator(filtered, limit)
	paginator.GoToPage(page)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       paginator.PageItems(),
		"pagination": paginationBlock(paginator.CurrentPage(), limit, int64(len(filtered))),
	})
}

// GetExpense returns one expense.
func GetExpense(c *gin.Context) {
	var expense models.Expense
	if err := config.DB.Preload("Project").Preload("Receipt").
		Where("expense_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&expense).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    expense,
	})
}

// CreateExpense creates an expense record.
func CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount cannot be negative"})
		return
	}
	if !models.ValidExpenseCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense category"})
		return
	}
	if req.ProjectID != nil {
		var project models.Project
		if err := config.DB.Where("project_id = ? AND user_id = ?", *req.ProjectID, accountID(c)).
			First(&project).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
			return
		}
	}

	now := time.Now()
	expense := models.Expense{
		UserID:      accountID(c),
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        req.Date,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Expense created successfully",
		"data":    expense,
	})
}

// UpdateExpense updates an expense in place.
func UpdateExpense(c *gin.Context) {
	var expense models.Expense
	if err := config.DB.Where("expense_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&expense).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount cannot be negative"})
		return
	}
	if !models.ValidExpenseCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense category"})
		return
	}
	if req.ProjectID != nil {
		var project models.Project
		if err := config.DB.Where("project_id = ? AND user_id = ?", *req.ProjectID, accountID(c)).
			First(&project).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
			return
		}
	}

	now := time.Now()
	expense.Description = req.Description
	expense.Amount = *req.Amount
	expense.Category = req.Category
	expense.Date = req.Date
	expense.ProjectID = req.ProjectID
	expense.UpdateAt = &now

	if err := config.DB.Save(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense updated successfully",
		"data":    expense,
	})
}

// DeleteExpense hard-deletes an expense (and its receipt file) after the
// ownership check.
func DeleteExpense(c *gin.Context) {
	var expense models.Expense
	if err := config.DB.Preload("Receipt").
		Where("expense_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&expense).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	if err := config.DB.Delete(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	if expense.Receipt != nil {
		os.Remove(expense.Receipt.StoredPath)
		config.DB.Delete(expense.Receipt)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense deleted successfully",
	})
}

// UploadReceipt attaches a receipt file to an expense.
func UploadReceipt(c *gin.Context) {
	var expense models.Expense
	if err := config.DB.Where("expense_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&expense).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	maxSize := int64(10 * 1024 * 1024) // 10MB
	if file.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	allowedTypes := map[string]bool{
		".pdf":  true,
		".png":  true,
		".jpg":  true,
		".jpeg": true,
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
	receiptDir := filepath.Join(uploadPath, "receipts")
	if err := os.MkdirAll(receiptDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	storedName := uuid.NewString() + ext
	fullPath := filepath.Join(receiptDir, storedName)
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

	expense.ReceiptID = &fileUpload.FileID
	expense.UpdateAt = &now
	if err := config.DB.Save(&expense).Error; err != nil {
		os.Remove(fullPath)
		config.DB.Delete(&fileUpload)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach receipt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Receipt uploaded successfully",
		"file":    fileUpload,
	})
}

// DownloadReceipt streams an expense's receipt file.
func DownloadReceipt(c *gin.Context) {
	var expense models.Expense
	if err := config.DB.Preload("Receipt").
		Where("expense_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&expense).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	if expense.Receipt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}

	if _, err := os.Stat(expense.Receipt.StoredPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", expense.Receipt.OriginalName))
	c.Header("Content-Type", "application/octet-stream")

	c.File(expense.Receipt.StoredPath)
}
