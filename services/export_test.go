package services

import (
	"strings"
	"testing"
	"time"

	"gestibud-api/models"
)

func sampleEmployees() []models.Employee {
	hire := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)
	return []models.Employee{
		{EmployeeID: 1, FirstName: "Marc", LastName: "Petit", Position: strPtr("Maçon"), HourlyRate: 22.5, HireDate: &hire, IsActive: true},
		{EmployeeID: 2, FirstName: "Léa", LastName: "Moreau", Position: strPtr("Chef de chantier"), HourlyRate: 30, IsActive: false},
		{EmployeeID: 3, FirstName: "Yanis", LastName: "Bernard", HourlyRate: 18, IsActive: true},
	}
}

func TestEmployeesToCSVShape(t *testing.T) {
	csv := EmployeesToCSV(sampleEmployees())

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 1 header + 3 rows, got %d lines", len(lines))
	}

	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != 8 {
			t.Fatalf("row %d: expected 8 fields, got %d (%q)", i+1, len(fields), line)
		}
		status := fields[7]
		active := sampleEmployees()[i].IsActive
		if active && status != `"Actif"` {
			t.Fatalf("row %d: active employee must have status \"Actif\", got %s", i+1, status)
		}
		if !active && status != `"Inactif"` {
			t.Fatalf("row %d: inactive employee must have status \"Inactif\", got %s", i+1, status)
		}
	}
}

func TestCSVEscapesEmbeddedQuotes(t *testing.T) {
	expenses := []models.Expense{
		{ExpenseID: 1, Description: `Location pelle 5t "grand godet"`, Category: "equipement", Amount: 450, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	csv := ExpensesToCSV(expenses)
	if !strings.Contains(csv, `"Location pelle 5t ""grand godet"""`) {
		t.Fatalf("embedded quotes must be doubled, got:\n%s", csv)
	}
}

func TestCSVFilename(t *testing.T) {
	at := time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)
	if got := CSVFilename("employees", at); got != "employees_2024-06-01.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestBuildEmployeeReportMonthlyCost(t *testing.T) {
	report := BuildEmployeeReport(sampleEmployees(), "EUR", "fr", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	// (22.5 + 18) x 160 over the two active employees.
	found := false
	for _, item := range report.Summary {
		if item.Label == "Coût mensuel estimé" {
			found = true
			if item.Value != "6 480,00 €" {
				t.Fatalf("expected monthly cost 6 480,00 €, got %q", item.Value)
			}
		}
	}
	if !found {
		t.Fatalf("summary must include the monthly labor cost estimate")
	}

	if len(report.Rows) != 3 {
		t.Fatalf("expected one row per employee, got %d", len(report.Rows))
	}
}

func TestRenderReportIsSelfContainedHTML(t *testing.T) {
	data := BuildExpenseReport(expenseFixture(), "EUR", "fr", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	html, err := RenderReport(data)
	if err != nil {
		t.Fatalf("RenderReport returned error: %v", err)
	}

	for _, want := range []string{"<!DOCTYPE html>", "Rapport dépenses", "window.print()", "<table>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %q:\n%s", want, html)
		}
	}
}

func TestTimeEntriesToCSVStatusColumn(t *testing.T) {
	csv := TimeEntriesToCSV(sampleTimeEntries())

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 1 header + 3 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], `"Terminé"`) {
		t.Fatalf("completed entry must export as Terminé: %q", lines[1])
	}
	if !strings.Contains(lines[2], `"En cours"`) {
		t.Fatalf("running entry must export as En cours: %q", lines[2])
	}
}
