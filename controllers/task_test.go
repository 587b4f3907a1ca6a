package controllers

import (
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
)

func TestGetTasksPagesInSQL(t *testing.T) {
	state := withScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `tasks`"),
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(5)}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `tasks`"),
			columns: []string{"task_id", "user_id", "project_id", "assigned_to", "title", "status", "priority"},
			rows: [][]driver.Value{
				{int64(3), int64(1), int64(1), nil, "Couler la dalle", "todo", "high"},
				{int64(4), int64(1), int64(1), nil, "Monter les murs", "todo", "medium"},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `projects`"),
			columns: []string{"project_id", "user_id", "name"},
			rows: [][]driver.Value{{
				int64(1), int64(1), "Chantier A",
			}},
		},
	})

	c, w := testContext(t, http.MethodGet, "/tasks?page=2&limit=2", "")

	GetTasks(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			CurrentPage int   `json:"current_page"`
			TotalCount  int64 `json:"total_count"`
			TotalPages  int64 `json:"total_pages"`
			HasNext     bool  `json:"has_next"`
			HasPrev     bool  `json:"has_prev"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 tasks on the page, got %d", len(resp.Data))
	}
	if resp.Pagination.CurrentPage != 2 {
		t.Fatalf("expected current_page 2, got %d", resp.Pagination.CurrentPage)
	}
	if resp.Pagination.TotalCount != 5 || resp.Pagination.TotalPages != 3 {
		t.Fatalf("expected 5 tasks over 3 pages, got %d over %d", resp.Pagination.TotalCount, resp.Pagination.TotalPages)
	}
	if !resp.Pagination.HasNext || !resp.Pagination.HasPrev {
		t.Fatalf("expected both navigation flags set on the middle page")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining expectations: %v", err)
	}
}
