package controllers

import (
	"net/http"

	"gestibud-api/services"
	"gestibud-api/utils"

	"github.com/gin-gonic/gin"
)

var allowedThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

var allowedLanguages = map[string]bool{
	"fr": true,
	"en": true,
}

// GetPreferences returns the workspace display preferences, falling back to
// defaults when none were saved yet.
func GetPreferences(c *gin.Context) {
	store, err := services.NewPreferenceStore(services.NewGormPreferenceRepository(), accountID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    store.Current(),
	})
}

// UpdatePreferences applies a partial preference update. Unknown values are
// rejected before anything is persisted.
func UpdatePreferences(c *gin.Context) {
	var req struct {
		Currency *string `json:"currency"`
		Language *string `json:"language"`
		Theme    *string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Currency != nil && !utils.KnownCurrency(*req.Currency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency"})
		return
	}
	if req.Language != nil && !allowedLanguages[*req.Language] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return
	}
	if req.Theme != nil && !allowedThemes[*req.Theme] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported theme"})
		return
	}

	store, err := services.NewPreferenceStore(services.NewGormPreferenceRepository(), accountID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
		return
	}

	prefs, err := store.Update(services.PreferenceUpdate{
		Currency: req.Currency,
		Language: req.Language,
		Theme:    req.Theme,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Preferences updated successfully",
		"data":    prefs,
	})
}
