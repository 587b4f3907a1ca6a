package controllers

import (
	"net/http"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"

	"github.com/gin-gonic/gin"
)

type MaterialRequest struct {
	Name              string  `json:"name" binding:"required"`
	Category          *string `json:"category"`
	Unit              *string `json:"unit"`
	UnitPrice         float64 `json:"unit_price"`
	StockQuantity     float64 `json:"stock_quantity"`
	MinStockThreshold float64 `json:"min_stock_threshold"`
	Supplier          *string `json:"supplier"`
}

func (r MaterialRequest) validate() string {
	if r.UnitPrice < 0 {
		return "Unit price cannot be negative"
	}
	if r.StockQuantity < 0 {
		return "Stock quantity cannot be negative"
	}
	if r.MinStockThreshold < 0 {
		return "Minimum stock threshold cannot be negative"
	}
	return ""
}

type materialResponse struct {
	models.Material
	LowStock bool `json:"low_stock"`
}

func toMaterialResponse(m models.Material) materialResponse {
	return materialResponse{Material: m, LowStock: m.IsLowStock()}
}

// GetMaterials returns the workspace's materials with the derived low_stock
// flag.
func GetMaterials(c *gin.Context) {
	query := config.DB.Where("user_id = ?", accountID(c))
	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var materials []models.Material
	if err := query.Order("name ASC").Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}

	responses := make([]materialResponse, 0, len(materials))
	for _, m := range materials {
		responses = append(responses, toMaterialResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}

// GetLowStockMaterials returns only the materials at or below their
// threshold.
func GetLowStockMaterials(c *gin.Context) {
	var materials []models.Material
	if err := config.DB.
		Where("user_id = ? AND stock_quantity <= min_stock_threshold", accountID(c)).
		Order("name ASC").
		Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}

	responses := make([]materialResponse, 0, len(materials))
	for _, m := range materials {
		responses = append(responses, toMaterialResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}

// GetMaterial returns one material.
func GetMaterial(c *gin.Context) {
	var material models.Material
	if err := config.DB.Where("material_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&material).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toMaterialResponse(material),
	})
}

// CreateMaterial creates a material record.
func CreateMaterial(c *gin.Context) {
	var req MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	material := models.Material{
		UserID:            accountID(c),
		Name:              req.Name,
		Category:          req.Category,
		Unit:              req.Unit,
		UnitPrice:         req.UnitPrice,
		StockQuantity:     req.StockQuantity,
		MinStockThreshold: req.MinStockThreshold,
		Supplier:          req.Supplier,
		CreateAt:          &now,
		UpdateAt:          &now,
	}

	if err := config.DB.Create(&material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Material created successfully",
		"data":    toMaterialResponse(material),
	})
}

// UpdateMaterial updates a material in place.
func UpdateMaterial(c *gin.Context) {
	var material models.Material
	if err := config.DB.Where("material_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&material).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		return
	}

	var req MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	material.Name = req.Name
	material.Category = req.Category
	material.Unit = req.Unit
	material.UnitPrice = req.UnitPrice
	material.StockQuantity = req.StockQuantity
	material.MinStockThreshold = req.MinStockThreshold
	material.Supplier = req.Supplier
	material.UpdateAt = &now

	if err := config.DB.Save(&material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Material updated successfully",
		"data":    toMaterialResponse(material),
	})
}

// DeleteMaterial hard-deletes a material after the ownership check.
func DeleteMaterial(c *gin.Context) {
	var material models.Material
	if err := config.DB.Where("material_id = ? AND user_id = ?", c.Param("id"), accountID(c)).
		First(&material).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		return
	}

	if err := config.DB.Delete(&material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Material deleted successfully",
	})
}
