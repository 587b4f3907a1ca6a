package services

import (
	"sort"
	"time"

	"gestibud-api/models"
	"gestibud-api/utils"
)

// Fallback labels used when a relation is missing. The reference locale of
// the product is French.
const (
	UnknownProjectLabel  = "Projet inconnu"
	UnknownEmployeeLabel = "Employé inconnu"
	NoProjectLabel       = "Sans projet"
)

// TimeEntryStats is the aggregate view of a time entry list.
type TimeEntryStats struct {
	TotalEntries         int     `json:"total_entries"`
	CompletedEntries     int     `json:"completed_entries"`
	InProgressEntries    int     `json:"in_progress_entries"`
	TotalHours           float64 `json:"total_hours"`
	AverageHoursPerEntry float64 `json:"average_hours_per_entry"`

	ByProject  []ProjectTimeBucket  `json:"by_project"`
	ByEmployee []EmployeeTimeBucket `json:"by_employee"`
	ByDay      []DayTimeBucket      `json:"by_day"`
}

type ProjectTimeBucket struct {
	ProjectName string  `json:"project_name"`
	Entries     int     `json:"entries"`
	Hours       float64 `json:"hours"`
	Completed   int     `json:"completed"`
}

type EmployeeTimeBucket struct {
	EmployeeName string  `json:"employee_name"`
	Entries      int     `json:"entries"`
	Hours        float64 `json:"hours"`
}

type DayTimeBucket struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Entries int       `json:"entries"`
	Hours   float64   `json:"hours"`
}

// ComputeTimeEntryStats aggregates a time entry list in one pass per grouping.
// It is pure: same records in any order produce the same stats. Missing
// hours_worked counts as zero; missing relations fall back to fixed labels.
func ComputeTimeEntryStats(entries []models.TimeEntry, lang string) TimeEntryStats {
	stats := TimeEntryStats{
		ByProject:  []ProjectTimeBucket{},
		ByEmployee: []EmployeeTimeBucket{},
		ByDay:      []DayTimeBucket{},
	}

	byProject := make(map[string]*ProjectTimeBucket)
	byEmployee := make(map[string]*EmployeeTimeBucket)
	byDay := make(map[string]*DayTimeBucket)

	var totalHours float64

	for _, entry := range entries {
		stats.TotalEntries++

		hours := 0.0
		if entry.HoursWorked != nil {
			hours = *entry.HoursWorked
		}

		if entry.IsCompleted() {
			stats.CompletedEntries++
			totalHours += hours
		} else {
			stats.InProgressEntries++
		}

		projectName := entry.Project.Name
		if projectName == "" {
			projectName = UnknownProjectLabel
		}
		project, ok := byProject[projectName]
		if !ok {
			project = &ProjectTimeBucket{ProjectName: projectName}
			byProject[projectName] = project
		}
		project.Entries++
		if entry.IsCompleted() {
			project.Completed++
			project.Hours += hours
		}

		employeeName := entry.Employee.FullName()
		if employeeName == " " {
			employeeName = UnknownEmployeeLabel
		}
		employee, ok := byEmployee[employeeName]
		if !ok {
			employee = &EmployeeTimeBucket{EmployeeName: employeeName}
			byEmployee[employeeName] = employee
		}
		employee.Entries++
		if entry.IsCompleted() {
			employee.Hours += hours
		}

		// Daily buckets cover completed entries only.
		if entry.IsCompleted() {
			dayStart := time.Date(entry.StartTime.Year(), entry.StartTime.Month(), entry.StartTime.Day(),
				0, 0, 0, 0, entry.StartTime.Location())
			day := dayStart.Format("2006-01-02")
			bucket, ok := byDay[day]
			if !ok {
				bucket = &DayTimeBucket{
					Date:  dayStart,
					Label: utils.FormatDate(dayStart, lang),
				}
				byDay[day] = bucket
			}
			bucket.Entries++
			bucket.Hours += hours
		}
	}

	stats.TotalHours = utils.Round2(totalHours)
	if stats.CompletedEntries > 0 {
		stats.AverageHoursPerEntry = utils.Round2(totalHours / float64(stats.CompletedEntries))
	}

	for _, bucket := range byProject {
		stats.ByProject = append(stats.ByProject, *bucket)
	}
	sort.Slice(stats.ByProject, func(i, j int) bool {
		return stats.ByProject[i].ProjectName < stats.ByProject[j].ProjectName
	})

	for _, bucket := range byEmployee {
		stats.ByEmployee = append(stats.ByEmployee, *bucket)
	}
	sort.Slice(stats.ByEmployee, func(i, j int) bool {
		return stats.ByEmployee[i].EmployeeName < stats.ByEmployee[j].EmployeeName
	})

	for _, bucket := range byDay {
		stats.ByDay = append(stats.ByDay, *bucket)
	}
	sort.Slice(stats.ByDay, func(i, j int) bool {
		return stats.ByDay[i].Date.Before(stats.ByDay[j].Date)
	})

	return stats
}

// ExpenseStats is the aggregate view of an expense list.
type ExpenseStats struct {
	TotalCount  int     `json:"total_count"`
	TotalAmount float64 `json:"total_amount"`

	ByCategory []CategoryExpenseBucket `json:"by_category"`
	ByProject  []ProjectExpenseBucket  `json:"by_project"`
	ByMonth    []MonthExpenseBucket    `json:"by_month"`
}

type CategoryExpenseBucket struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

type ProjectExpenseBucket struct {
	ProjectName string  `json:"project_name"`
	Amount      float64 `json:"amount"`
	Count       int     `json:"count"`
}

type MonthExpenseBucket struct {
	Month  time.Time `json:"month"`
	Label  string    `json:"label"`
	Amount float64   `json:"amount"`
	Count  int       `json:"count"`
}

// ComputeExpenseStats aggregates an expense list by category, project and
// calendar month. Monthly buckets sort by chronological month, not by their
// locale label.
func ComputeExpenseStats(expenses []models.Expense, lang string) ExpenseStats {
	stats := ExpenseStats{
		ByCategory: []CategoryExpenseBucket{},
		ByProject:  []ProjectExpenseBucket{},
		ByMonth:    []MonthExpenseBucket{},
	}

	byCategory := make(map[string]*CategoryExpenseBucket)
	byProject := make(map[string]*ProjectExpenseBucket)
	byMonth := make(map[string]*MonthExpenseBucket)

	for _, expense := range expenses {
		stats.TotalCount++
		stats.TotalAmount += expense.Amount

		category, ok := byCategory[expense.Category]
		if !ok {
			category = &CategoryExpenseBucket{Category: expense.Category}
			byCategory[expense.Category] = category
		}
		category.Count++
		category.Amount += expense.Amount

		projectName := NoProjectLabel
		if expense.ProjectID != nil {
			projectName = UnknownProjectLabel
			if expense.Project != nil && expense.Project.Name != "" {
				projectName = expense.Project.Name
			}
		}
		project, ok := byProject[projectName]
		if !ok {
			project = &ProjectExpenseBucket{ProjectName: projectName}
			byProject[projectName] = project
		}
		project.Count++
		project.Amount += expense.Amount

		monthStart := time.Date(expense.Date.Year(), expense.Date.Month(), 1, 0, 0, 0, 0, expense.Date.Location())
		monthKey := monthStart.Format("2006-01")
		month, ok := byMonth[monthKey]
		if !ok {
			month = &MonthExpenseBucket{
				Month: monthStart,
				Label: utils.FormatMonthLabel(monthStart, lang),
			}
			byMonth[monthKey] = month
		}
		month.Count++
		month.Amount += expense.Amount
	}

	stats.TotalAmount = utils.Round2(stats.TotalAmount)

	for _, bucket := range byCategory {
		stats.ByCategory = append(stats.ByCategory, *bucket)
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		return stats.ByCategory[i].Category < stats.ByCategory[j].Category
	})

	for _, bucket := range byProject {
		stats.ByProject = append(stats.ByProject, *bucket)
	}
	sort.Slice(stats.ByProject, func(i, j int) bool {
		return stats.ByProject[i].ProjectName < stats.ByProject[j].ProjectName
	})

	for _, bucket := range byMonth {
		stats.ByMonth = append(stats.ByMonth, *bucket)
	}
	sort.Slice(stats.ByMonth, func(i, j int) bool {
		return stats.ByMonth[i].Month.Before(stats.ByMonth[j].Month)
	})

	return stats
}
