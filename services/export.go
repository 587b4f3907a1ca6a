package services

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"gestibud-api/models"
	"gestibud-api/utils"
)

// MonthlyHoursEstimate is the flat monthly hour count used for the labor cost
// estimate in the employee report.
const MonthlyHoursEstimate = 160

// CSVFilename builds the `<entity>_<ISO-date>.csv` download name.
func CSVFilename(entity string, at time.Time) string {
	return entity + "_" + at.Format("2006-01-02") + ".csv"
}

// csvString quotes a free-text field per RFC 4180: wrapped in double quotes
// with embedded quotes doubled.
func csvString(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func csvNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func csvDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return `""`
	}
	return csvString(t.Format("2006-01-02"))
}

func csvJoin(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n") + "\n"
}

// EmployeesToCSV renders the employee collection. The caller supplies an
// already filtered subset; no filtering happens here.
func EmployeesToCSV(employees []models.Employee) string {
	rows := [][]string{{
		csvString("Prénom"), csvString("Nom"), csvString("Poste"), csvString("Email"),
		csvString("Téléphone"), csvString("Taux horaire"), csvString("Date d'embauche"), csvString("Statut"),
	}}

	for _, e := range employees {
		status := "Inactif"
		if e.IsActive {
			status = "Actif"
		}
		rows = append(rows, []string{
			csvString(e.FirstName),
			csvString(e.LastName),
			csvString(derefString(e.Position)),
			csvString(derefString(e.Email)),
			csvString(derefString(e.Phone)),
			csvNumber(e.HourlyRate),
			csvDate(e.HireDate),
			csvString(status),
		})
	}

	return csvJoin(rows)
}

// MaterialsToCSV renders the material collection.
func MaterialsToCSV(materials []models.Material) string {
	rows := [][]string{{
		csvString("Nom"), csvString("Catégorie"), csvString("Unité"), csvString("Prix unitaire"),
		csvString("Quantité en stock"), csvString("Seuil minimum"), csvString("Fournisseur"), csvString("Stock faible"),
	}}

	for _, m := range materials {
		lowStock := "Non"
		if m.IsLowStock() {
			lowStock = "Oui"
		}
		rows = append(rows, []string{
			csvString(m.Name),
			csvString(derefString(m.Category)),
			csvString(derefString(m.Unit)),
			csvNumber(m.UnitPrice),
			csvNumber(m.StockQuantity),
			csvNumber(m.MinStockThreshold),
			csvString(derefString(m.Supplier)),
			csvString(lowStock),
		})
	}

	return csvJoin(rows)
}

// ExpensesToCSV renders the expense collection.
func ExpensesToCSV(expenses []models.Expense) string {
	rows := [][]string{{
		csvString("Description"), csvString("Catégorie"), csvString("Montant"),
		csvString("Date"), csvString("Projet"),
	}}

	for _, e := range expenses {
		projectName := NoProjectLabel
		if e.ProjectID != nil {
			projectName = UnknownProjectLabel
			if e.Project != nil && e.Project.Name != "" {
				projectName = e.Project.Name
			}
		}
		date := e.Date
		rows = append(rows, []string{
			csvString(e.Description),
			csvString(e.Category),
			csvNumber(e.Amount),
			csvDate(&date),
			csvString(projectName),
		})
	}

	return csvJoin(rows)
}

// TimeEntriesToCSV renders the time entry collection.
func TimeEntriesToCSV(entries []models.TimeEntry) string {
	rows := [][]string{{
		csvString("Date"), csvString("Employé"), csvString("Projet"), csvString("Début"),
		csvString("Fin"), csvString("Heures"), csvString("Description"), csvString("Statut"),
	}}

	for _, entry := range entries {
		employeeName := entry.Employee.FullName()
		if employeeName == " " {
			employeeName = UnknownEmployeeLabel
		}
		projectName := entry.Project.Name
		if projectName == "" {
			projectName = UnknownProjectLabel
		}

		end := ""
		status := "En cours"
		if entry.EndTime != nil {
			end = entry.EndTime.Format("15:04")
			status = "Terminé"
		}
		hours := 0.0
		if entry.HoursWorked != nil {
			hours = *entry.HoursWorked
		}

		start := entry.StartTime
		rows = append(rows, []string{
			csvDate(&start),
			csvString(employeeName),
			csvString(projectName),
			csvString(entry.StartTime.Format("15:04")),
			csvString(end),
			csvNumber(hours),
			csvString(derefString(entry.Description)),
			csvString(status),
		})
	}

	return csvJoin(rows)
}

// ReportData is the model behind the printable HTML report.
type ReportData struct {
	Title       string
	GeneratedAt string
	Summary     []ReportSummaryItem
	Headers     []string
	Rows        [][]string
}

type ReportSummaryItem struct {
	Label string
	Value string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; color: #1a1a1a; }
h1 { font-size: 20px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
.summary { margin: 16px 0; }
.summary span { display: inline-block; margin-right: 24px; font-size: 14px; }
table { border-collapse: collapse; width: 100%; font-size: 13px; }
th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
th { background: #eee; }
.generated { color: #666; font-size: 12px; margin-top: 16px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="summary">
{{range .Summary}}<span><strong>{{.Label}} :</strong> {{.Value}}</span>{{end}}
</div>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
<p class="generated">Généré le {{.GeneratedAt}}</p>
<script>window.print();</script>
</body>
</html>
`))

// RenderReport produces the self-contained printable HTML document.
func RenderReport(data ReportData) (string, error) {
	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// BuildEmployeeReport shapes the employee report: headcounts plus the monthly
// labor cost estimate (hourly_rate x 160 summed over active employees).
func BuildEmployeeReport(employees []models.Employee, currency, lang string, at time.Time) ReportData {
	active := 0
	var monthlyCost float64
	for _, e := range employees {
		if e.IsActive {
			active++
			monthlyCost += e.HourlyRate * MonthlyHoursEstimate
		}
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		status := "Inactif"
		if e.IsActive {
			status = "Actif"
		}
		hireDate := ""
		if e.HireDate != nil {
			hireDate = utils.FormatDate(*e.HireDate, lang)
		}
		rows = append(rows, []string{
			e.FullName(),
			derefString(e.Position),
			utils.FormatAmount(e.HourlyRate, currency, lang),
			hireDate,
			status,
		})
	}

	return ReportData{
		Title:       utils.Translate("report.title.employees", lang, nil),
		GeneratedAt: utils.FormatDate(at, lang),
		Summary: []ReportSummaryItem{
			{Label: "Employés", Value: strconv.Itoa(len(employees))},
			{Label: "Actifs", Value: strconv.Itoa(active)},
			{Label: "Coût mensuel estimé", Value: utils.FormatAmount(monthlyCost, currency, lang)},
		},
		Headers: []string{"Nom", "Poste", "Taux horaire", "Date d'embauche", "Statut"},
		Rows:    rows,
	}
}

// BuildMaterialReport shapes the material report with stock valuation and the
// low stock count.
func BuildMaterialReport(materials []models.Material, currency, lang string, at time.Time) ReportData {
	lowStock := 0
	var stockValue float64
	for _, m := range materials {
		if m.IsLowStock() {
			lowStock++
		}
		stockValue += m.UnitPrice * m.StockQuantity
	}

	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		flag := ""
		if m.IsLowStock() {
			flag = "Stock faible"
		}
		rows = append(rows, []string{
			m.Name,
			derefString(m.Category),
			utils.FormatNumber(m.StockQuantity, lang) + " " + derefString(m.Unit),
			utils.FormatAmount(m.UnitPrice, currency, lang),
			derefString(m.Supplier),
			flag,
		})
	}

	return ReportData{
		Title:       utils.Translate("report.title.materials", lang, nil),
		GeneratedAt: utils.FormatDate(at, lang),
		Summary: []ReportSummaryItem{
			{Label: "Matériaux", Value: strconv.Itoa(len(materials))},
			{Label: "En stock faible", Value: strconv.Itoa(lowStock)},
			{Label: "Valeur du stock", Value: utils.FormatAmount(stockValue, currency, lang)},
		},
		Headers: []string{"Nom", "Catégorie", "Stock", "Prix unitaire", "Fournisseur", "Alerte"},
		Rows:    rows,
	}
}

// BuildExpenseReport shapes the expense report over an already filtered
// subset.
func BuildExpenseReport(expenses []models.Expense, currency, lang string, at time.Time) ReportData {
	stats := ComputeExpenseStats(expenses, lang)

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		projectName := NoProjectLabel
		if e.ProjectID != nil {
			projectName = UnknownProjectLabel
			if e.Project != nil && e.Project.Name != "" {
				projectName = e.Project.Name
			}
		}
		rows = append(rows, []string{
			utils.FormatDate(e.Date, lang),
			e.Description,
			e.Category,
			projectName,
			utils.FormatAmount(e.Amount, currency, lang),
		})
	}

	return ReportData{
		Title:       utils.Translate("report.title.expenses", lang, nil),
		GeneratedAt: utils.FormatDate(at, lang),
		Summary: []ReportSummaryItem{
			{Label: "Dépenses", Value: strconv.Itoa(stats.TotalCount)},
			{Label: "Montant total", Value: utils.FormatAmount(stats.TotalAmount, currency, lang)},
		},
		Headers: []string{"Date", "Description", "Catégorie", "Projet", "Montant"},
		Rows:    rows,
	}
}

// BuildTimeEntryReport shapes the time entry report over an already filtered
// subset.
func BuildTimeEntryReport(entries []models.TimeEntry, lang string, at time.Time) ReportData {
	stats := ComputeTimeEntryStats(entries, lang)

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		employeeName := entry.Employee.FullName()
		if employeeName == " " {
			employeeName = UnknownEmployeeLabel
		}
		projectName := entry.Project.Name
		if projectName == "" {
			projectName = UnknownProjectLabel
		}
		status := "En cours"
		hours := ""
		if entry.IsCompleted() {
			status = "Terminé"
			if entry.HoursWorked != nil {
				hours = utils.FormatNumber(*entry.HoursWorked, lang)
			}
		}
		rows = append(rows, []string{
			utils.FormatDate(entry.StartTime, lang),
			employeeName,
			projectName,
			hours,
			status,
		})
	}

	return ReportData{
		Title:       utils.Translate("report.title.time_entries", lang, nil),
		GeneratedAt: utils.FormatDate(at, lang),
		Summary: []ReportSummaryItem{
			{Label: "Pointages", Value: strconv.Itoa(stats.TotalEntries)},
			{Label: "Terminés", Value: strconv.Itoa(stats.CompletedEntries)},
			{Label: "Heures totales", Value: utils.FormatNumber(stats.TotalHours, lang)},
		},
		Headers: []string{"Date", "Employé", "Projet", "Heures", "Statut"},
		Rows:    rows,
	}
}
