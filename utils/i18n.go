package utils

import "strings"

// translations is the static dictionary keyed by message key then language.
// French is the reference language; other languages fill in over time.
var translations = map[string]map[string]string{
	"export.ready": {
		"fr": "Export prêt : {file}",
		"en": "Export ready: {file}",
	},
	"timeentry.stopped": {
		"fr": "Pointage arrêté ({hours} h)",
		"en": "Timer stopped ({hours} h)",
	},
	"material.low_stock": {
		"fr": "Stock faible : {name}",
		"en": "Low stock: {name}",
	},
	"invitation.subject": {
		"fr": "Invitation à rejoindre Gestibud",
		"en": "Invitation to join Gestibud",
	},
	"invitation.expired": {
		"fr": "Cette invitation a expiré",
		"en": "This invitation has expired",
	},
	"report.title.employees": {
		"fr": "Rapport employés",
		"en": "Employee report",
	},
	"report.title.materials": {
		"fr": "Rapport matériaux",
		"en": "Material report",
	},
	"report.title.expenses": {
		"fr": "Rapport dépenses",
		"en": "Expense report",
	},
	"report.title.time_entries": {
		"fr": "Rapport pointages",
		"en": "Time entry report",
	},
}

// Translate resolves a message key for the given language with {param}
// substitution. Lookup falls back to French, then to the raw key.
func Translate(key, lang string, params map[string]string) string {
	text := key
	if byLang, ok := translations[key]; ok {
		if t, ok := byLang[lang]; ok {
			text = t
		} else if t, ok := byLang["fr"]; ok {
			text = t
		}
	}

	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}
