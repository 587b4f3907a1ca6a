package services

import (
	"strings"
	"time"

	"gestibud-api/models"
)

// Status filter values for time entries. FilterStatusAll matches everything,
// the other two split on the presence of end_time.
const (
	FilterStatusAll        = "all"
	FilterStatusCompleted  = "completed"
	FilterStatusInProgress = "in_progress"
)

// TimeEntryFilter holds the criteria applied to a time entry list. A zero
// value criterion (empty string, "all", zero id, zero time) is inactive and
// skipped; active criteria combine with logical AND.
type TimeEntryFilter struct {
	Search     string
	ProjectID  int
	EmployeeID int
	Status     string
	DateFrom   time.Time
	DateTo     time.Time
}

// ExpenseFilter holds the criteria applied to an expense list.
type ExpenseFilter struct {
	Search    string
	Category  string
	ProjectID int
	DateFrom  time.Time
	DateTo    time.Time
}

// FilterTimeEntries returns the entries satisfying every active criterion,
// preserving input order. Both the listing endpoints and the export endpoints
// go through here so the two paths cannot drift apart.
func FilterTimeEntries(entries []models.TimeEntry, filter TimeEntryFilter) []models.TimeEntry {
	result := make([]models.TimeEntry, 0, len(entries))

	for _, entry := range entries {
		if !matchSearch(filter.Search,
			derefString(entry.Description),
			entry.Project.Name,
			entry.Employee.FullName(),
		) {
			continue
		}
		if filter.ProjectID != 0 && entry.ProjectID != filter.ProjectID {
			continue
		}
		if filter.EmployeeID != 0 && entry.EmployeeID != filter.EmployeeID {
			continue
		}
		if !matchTimeEntryStatus(filter.Status, entry) {
			continue
		}
		if !matchDateRange(entry.StartTime, filter.DateFrom, filter.DateTo) {
			continue
		}
		result = append(result, entry)
	}

	return result
}

// FilterExpenses returns the expenses satisfying every active criterion,
// preserving input order.
func FilterExpenses(expenses []models.Expense, filter ExpenseFilter) []models.Expense {
	result := make([]models.Expense, 0, len(expenses))

	for _, expense := range expenses {
		projectName := ""
		if expense.Project != nil {
			projectName = expense.Project.Name
		}
		if !matchSearch(filter.Search, expense.Description, expense.Category, projectName) {
			continue
		}
		if filter.Category != "" && filter.Category != FilterStatusAll && expense.Category != filter.Category {
			continue
		}
		if filter.ProjectID != 0 && (expense.ProjectID == nil || *expense.ProjectID != filter.ProjectID) {
			continue
		}
		if !matchDateRange(expense.Date, filter.DateFrom, filter.DateTo) {
			continue
		}
		result = append(result, expense)
	}

	return result
}

// matchSearch is a case-insensitive substring match over the record's derived
// strings. An empty query matches everything.
func matchSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchTimeEntryStatus(status string, entry models.TimeEntry) bool {
	switch status {
	case "", FilterStatusAll:
		return true
	case FilterStatusCompleted:
		return entry.IsCompleted()
	case FilterStatusInProgress:
		return !entry.IsCompleted()
	}
	// Unknown status values match nothing rather than erroring.
	return false
}

// matchDateRange checks t against an inclusive [from, to] window. A zero bound
// is open.
func matchDateRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
