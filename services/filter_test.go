package services

import (
	"reflect"
	"testing"
	"time"

	"gestibud-api/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func sampleTimeEntries() []models.TimeEntry {
	end := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)
	return []models.TimeEntry{
		{
			TimeEntryID: 1,
			ProjectID:   10,
			EmployeeID:  20,
			StartTime:   time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC),
			EndTime:     &end,
			HoursWorked: floatPtr(8),
			Description: strPtr("Coulage dalle béton"),
			Project:     models.Project{ProjectID: 10, Name: "Villa Durand"},
			Employee:    models.Employee{EmployeeID: 20, FirstName: "Marc", LastName: "Petit"},
		},
		{
			TimeEntryID: 2,
			ProjectID:   11,
			EmployeeID:  21,
			StartTime:   time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
			Description: strPtr("Pose carrelage"),
			Project:     models.Project{ProjectID: 11, Name: "Immeuble Leroy"},
			Employee:    models.Employee{EmployeeID: 21, FirstName: "Léa", LastName: "Moreau"},
		},
		{
			TimeEntryID: 3,
			ProjectID:   10,
			EmployeeID:  21,
			StartTime:   time.Date(2024, 3, 6, 7, 30, 0, 0, time.UTC),
			Project:     models.Project{ProjectID: 10, Name: "Villa Durand"},
			Employee:    models.Employee{EmployeeID: 21, FirstName: "Léa", LastName: "Moreau"},
		},
	}
}

func TestFilterTimeEntriesAllInactiveReturnsInputUnchanged(t *testing.T) {
	entries := sampleTimeEntries()
	got := FilterTimeEntries(entries, TimeEntryFilter{Status: FilterStatusAll})

	if !reflect.DeepEqual(got, entries) {
		t.Fatalf("inactive criteria must return the original list in order")
	}
}

func TestFilterTimeEntriesIsIdempotent(t *testing.T) {
	entries := sampleTimeEntries()
	filter := TimeEntryFilter{Search: "moreau"}

	once := FilterTimeEntries(entries, filter)
	twice := FilterTimeEntries(once, filter)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice must equal filtering once")
	}
	if len(once) != 2 {
		t.Fatalf("expected 2 entries for Moreau, got %d", len(once))
	}
}

func TestFilterTimeEntriesCombinesCriteriaWithAnd(t *testing.T) {
	entries := sampleTimeEntries()
	got := FilterTimeEntries(entries, TimeEntryFilter{
		ProjectID:  10,
		EmployeeID: 21,
	})

	if len(got) != 1 || got[0].TimeEntryID != 3 {
		t.Fatalf("expected only entry 3, got %+v", got)
	}
}

func TestFilterTimeEntriesStatusRule(t *testing.T) {
	entries := sampleTimeEntries()

	completed := FilterTimeEntries(entries, TimeEntryFilter{Status: FilterStatusCompleted})
	if len(completed) != 1 || completed[0].TimeEntryID != 1 {
		t.Fatalf("completed means end_time present, got %+v", completed)
	}

	inProgress := FilterTimeEntries(entries, TimeEntryFilter{Status: FilterStatusInProgress})
	if len(inProgress) != 2 {
		t.Fatalf("expected 2 in-progress entries, got %d", len(inProgress))
	}
}

func TestFilterTimeEntriesSearchIsCaseInsensitive(t *testing.T) {
	entries := sampleTimeEntries()

	got := FilterTimeEntries(entries, TimeEntryFilter{Search: "VILLA"})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries matching project name, got %d", len(got))
	}

	got = FilterTimeEntries(entries, TimeEntryFilter{Search: "carrelage"})
	if len(got) != 1 || got[0].TimeEntryID != 2 {
		t.Fatalf("expected description match on entry 2, got %+v", got)
	}
}

func TestFilterTimeEntriesDateRange(t *testing.T) {
	entries := sampleTimeEntries()
	got := FilterTimeEntries(entries, TimeEntryFilter{
		DateFrom: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC),
	})

	if len(got) != 1 || got[0].TimeEntryID != 2 {
		t.Fatalf("expected only the March 5 entry, got %+v", got)
	}
}

func TestFilterExpensesNilProjectFailsProjectCriterionOnly(t *testing.T) {
	projectID := 10
	expenses := []models.Expense{
		{ExpenseID: 1, Description: "Ciment", Category: "materiaux", Amount: 120, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ExpenseID: 2, Description: "Gravier", Category: "materiaux", Amount: 80, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), ProjectID: &projectID},
	}

	byProject := FilterExpenses(expenses, ExpenseFilter{ProjectID: 10})
	if len(byProject) != 1 || byProject[0].ExpenseID != 2 {
		t.Fatalf("expense without project must not match a project criterion, got %+v", byProject)
	}

	// The same expense still matches when the criterion is inactive.
	all := FilterExpenses(expenses, ExpenseFilter{Category: FilterStatusAll})
	if len(all) != 2 {
		t.Fatalf("inactive criteria must keep every expense, got %d", len(all))
	}
}

func TestFilterExpensesByCategory(t *testing.T) {
	expenses := []models.Expense{
		{ExpenseID: 1, Description: "Ciment", Category: "materiaux", Amount: 120, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ExpenseID: 2, Description: "Gasoil", Category: "transport", Amount: 60, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
	}

	got := FilterExpenses(expenses, ExpenseFilter{Category: "transport"})
	if len(got) != 1 || got[0].ExpenseID != 2 {
		t.Fatalf("expected only the transport expense, got %+v", got)
	}
}
