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

func TestUpdateTimeEntryRejectsProjectFromAnotherWorkspace(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	state := withScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `time_entries`"),
			columns: []string{"time_entry_id", "user_id", "project_id", "employee_id", "start_time", "end_time", "hours_worked", "description"},
			rows: [][]driver.Value{{
				int64(9), int64(1), int64(3), int64(4), start, nil, nil, nil,
			}},
		},
		{
			// Project 77 belongs to another workspace: the ownership-scoped
			// lookup finds nothing and the update must stop here.
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `projects`"),
			columns: []string{"project_id", "user_id", "name"},
			rows:    [][]driver.Value{},
		},
	})

	body := `{"project_id":77,"employee_id":4,"start_time":"2024-01-01T09:00:00Z"}`
	c, w := testContext(t, http.MethodPut, "/time-entries/9", body)
	c.Params = append(c.Params, gin.Param{Key: "id", Value: "9"})

	UpdateTimeEntry(c)

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

func TestUpdateTimeEntryRejectsEmployeeFromAnotherWorkspace(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	state := withScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `time_entries`"),
			columns: []string{"time_entry_id", "user_id", "project_id", "employee_id", "start_time", "end_time", "hours_worked", "description"},
			rows: [][]driver.Value{{
				int64(9), int64(1), int64(3), int64(4), start, nil, nil, nil,
			}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `projects`"),
			columns: []string{"project_id", "user_id", "name"},
			rows: [][]driver.Value{{
				int64(3), int64(1), "Chantier A",
			}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `employees`"),
			columns: []string{"employee_id", "user_id", "first_name", "last_name"},
			rows:    [][]driver.Value{},
		},
	})

	body := `{"project_id":3,"employee_id":88,"start_time":"2024-01-01T09:00:00Z"}`
	c, w := testContext(t, http.MethodPut, "/time-entries/9", body)
	c.Params = append(c.Params, gin.Param{Key: "id", Value: "9"})

	UpdateTimeEntry(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Employee not found") {
		t.Fatalf("expected employee rejection, got %s", w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("no UPDATE should have been issued: %v", err)
	}
}
