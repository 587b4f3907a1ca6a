package controllers

import (
	"database/sql/driver"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestUpdateExpenseRejectsProjectFromAnotherWorkspace(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	state := withScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `expenses`"),
			columns: []string{"expense_id", "user_id", "project_id", "description", "amount", "category", "date", "receipt_id"},
			rows: [][]driver.Value{{
				int64(9), int64(1), nil, "Sable", 10.0, "autre", date, nil,
			}},
		},
		{
			// The requested project belongs to another workspace; the
			// ownership-scoped lookup comes back empty.
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `projects`"),
			columns: []string{"project_id", "user_id", "name"},
			rows:    [][]driver.Value{},
		},
	})

	body := `{"description":"Sable","amount":12.5,"category":"materiaux","date":"2024-05-01T00:00:00Z","project_id":77}`
	c, w := testContext(t, http.MethodPut, "/expenses/9", body)
	c.Params = append(c.Params, gin.Param{Key: "id", Value: "9"})

	UpdateExpense(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Project not found") {
		t.Fatalf("expected project rejection, got %s", w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("no UPDATE should have been issued: %v", err)
	}
}
