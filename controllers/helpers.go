package controllers

import (
	"strconv"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/services"

	"github.com/gin-gonic/gin"
)

// accountID returns the workspace the request operates on. Every data query
// filters on it.
func accountID(c *gin.Context) int {
	id, _ := c.Get("accountID")
	account, _ := id.(int)
	return account
}

// currentUserID returns the authenticated user's id.
func currentUserID(c *gin.Context) int {
	id, _ := c.Get("userID")
	user, _ := id.(int)
	return user
}

// accountLanguage loads the account's preferred language, defaulting to fr.
func accountLanguage(c *gin.Context) string {
	var prefs models.UserPreferences
	if err := config.DB.Where("user_id = ?", accountID(c)).First(&prefs).Error; err != nil {
		return services.DefaultLanguage
	}
	if prefs.Language == "" {
		return services.DefaultLanguage
	}
	return prefs.Language
}

// accountCurrency loads the account's preferred currency, defaulting to EUR.
func accountCurrency(c *gin.Context) string {
	var prefs models.UserPreferences
	if err := config.DB.Where("user_id = ?", accountID(c)).First(&prefs).Error; err != nil {
		return services.DefaultCurrency
	}
	if prefs.Currency == "" {
		return services.DefaultCurrency
	}
	return prefs.Currency
}

// parseDateQuery reads an ISO date query parameter, returning the zero time
// when absent or malformed.
func parseDateQuery(c *gin.Context, name string) time.Time {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseIntQuery reads an integer query parameter, 0 when absent or invalid.
func parseIntQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" || raw == "all" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// paginationQuery reads page/limit query parameters with clamping.
func paginationQuery(c *gin.Context, fallbackLimit int) (int, int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallbackLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = fallbackLimit
	}
	return page, limit, (page - 1) * limit
}

// paginationBlock is the pagination payload attached to list responses.
func paginationBlock(page, limit int, totalCount int64) gin.H {
	totalPages := (totalCount + int64(limit) - 1) / int64(limit)
	return gin.H{
		"current_page": page,
		"per_page":     limit,
		"total_count":  totalCount,
		"total_pages":  totalPages,
		"has_next":     page < int(totalPages),
		"has_prev":     page > 1,
	}
}

// timeEntryFilterFromQuery builds the shared filter criteria from list and
// export query parameters.
func timeEntryFilterFromQuery(c *gin.Context) services.TimeEntryFilter {
	return services.TimeEntryFilter{
		Search:     c.Query("search"),
		ProjectID:  parseIntQuery(c, "project_id"),
		EmployeeID: parseIntQuery(c, "employee_id"),
		Status:     c.Query("status"),
		DateFrom:   parseDateQuery(c, "date_from"),
		DateTo:     endOfDay(parseDateQuery(c, "date_to")),
	}
}

// expenseFilterFromQuery builds the shared expense filter criteria.
func expenseFilterFromQuery(c *gin.Context) services.ExpenseFilter {
	return services.ExpenseFilter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		ProjectID: parseIntQuery(c, "project_id"),
		DateFrom:  parseDateQuery(c, "date_from"),
		DateTo:    endOfDay(parseDateQuery(c, "date_to")),
	}
}

// endOfDay widens an inclusive date bound to the end of that day.
func endOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.Add(24*time.Hour - time.Nanosecond)
}
